package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamebuddy/internal/database"
	"gamebuddy/internal/models"
)

// In-memory store fakes mirroring the database package's contracts.

type fakeCredentialStore struct {
	passwords map[string]string
	err       error
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{passwords: map[string]string{}}
}

func (f *fakeCredentialStore) RegisterUser(username, password string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.passwords[username]; ok {
		return false, nil
	}
	f.passwords[username] = password
	return true, nil
}

func (f *fakeCredentialStore) VerifyPassword(username, password string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	stored, ok := f.passwords[username]
	return ok && stored == password, nil
}

type fakeProfileStore struct {
	profiles map[string]*models.Profile
	friends  map[string][]string
	err      error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles: map[string]*models.Profile{},
		friends:  map[string][]string{},
	}
}

func (f *fakeProfileStore) CreateProfile(username, email string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now()
	p := &models.Profile{Username: username, Email: email, CreatedAt: now, UpdatedAt: now}
	f.profiles[username] = p
	return p, nil
}

func (f *fakeProfileStore) GetProfile(username string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[username], nil
}

func (f *fakeProfileStore) UpdateProfile(username string, email *string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	p, ok := f.profiles[username]
	if !ok {
		return false, nil
	}
	if email != nil {
		p.Email = *email
	}
	p.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeProfileStore) AddFriend(username, friendUsername string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if username == friendUsername {
		return false, nil
	}
	if f.profiles[username] == nil || f.profiles[friendUsername] == nil {
		return false, nil
	}
	for _, existing := range f.friends[username] {
		if existing == friendUsername {
			return false, nil
		}
	}
	f.friends[username] = append(f.friends[username], friendUsername)
	f.friends[friendUsername] = append(f.friends[friendUsername], username)
	return true, nil
}

func (f *fakeProfileStore) RemoveFriend(username, friendUsername string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	removed := false
	for _, pair := range [][2]string{{username, friendUsername}, {friendUsername, username}} {
		list := f.friends[pair[0]]
		for i, existing := range list {
			if existing == pair[1] {
				f.friends[pair[0]] = append(list[:i:i], list[i+1:]...)
				removed = true
				break
			}
		}
	}
	return removed, nil
}

func (f *fakeProfileStore) ListFriends(username string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	list := f.friends[username]
	if list == nil {
		return []string{}, nil
	}
	return list, nil
}

type fakePostStore struct {
	posts []*models.Post
	err   error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{}
}

func (f *fakePostStore) CreatePost(author, game, description string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post := &models.Post{
		ID:          uuid.New(),
		Author:      author,
		Game:        game,
		Description: description,
		CreatedAt:   time.Now().Add(time.Duration(len(f.posts)) * time.Millisecond),
		Votes:       []models.Vote{},
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakePostStore) matching(search string, author string) []*models.Post {
	var out []*models.Post
	for _, p := range f.posts {
		if author != "" && p.Author != author {
			continue
		}
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(p.Author), needle) &&
				!strings.Contains(strings.ToLower(p.Game), needle) {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakePostStore) paginate(matched []*models.Post, page, limit int) *database.PostPage {
	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	data := make([]models.Post, 0, end-start)
	for _, p := range matched[start:end] {
		data = append(data, *p)
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &database.PostPage{Data: data, Total: total, Page: page, Limit: limit, TotalPages: pages}
}

func (f *fakePostStore) ListPosts(page, limit int, search string) (*database.PostPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.paginate(f.matching(search, ""), page, limit), nil
}

func (f *fakePostStore) ListPostsByUser(username string, page, limit int) (*database.PostPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.paginate(f.matching("", username), page, limit), nil
}

func (f *fakePostStore) GetPost(id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) ToggleVote(id, username string) (*database.VoteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var post *models.Post
	for _, p := range f.posts {
		if p.ID.String() == id {
			post = p
			break
		}
	}
	if post == nil {
		return nil, nil
	}
	for i, v := range post.Votes {
		if v.Username == username {
			post.Votes = append(post.Votes[:i:i], post.Votes[i+1:]...)
			return &database.VoteResult{Voted: false, VoteCount: len(post.Votes)}, nil
		}
	}
	post.Votes = append(post.Votes, models.Vote{PostID: post.ID, Username: username, CreatedAt: time.Now()})
	return &database.VoteResult{Voted: true, VoteCount: len(post.Votes)}, nil
}

type fakeDenylist struct {
	added map[string]time.Duration
	err   error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{added: map[string]time.Duration{}}
}

func (f *fakeDenylist) Add(_ context.Context, token string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.added[token] = ttl
	return nil
}
