package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
	"learnhub/repository"
)

// In-memory repository fakes. They mimic the lookup semantics of the
// Mongo implementations, including ErrNoDocument for missing ids.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Insert(_ context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Search(_ context.Context, query string) ([]models.User, error) {
	query = strings.ToLower(query)
	var out []models.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), query) || strings.Contains(strings.ToLower(u.Email), query) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *u
	r.users[u.ID.Hex()] = &copied
	return nil
}

type fakeMediaRepo struct {
	posts map[string]*models.Media
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{posts: map[string]*models.Media{}}
}

func (r *fakeMediaRepo) Insert(_ context.Context, m *models.Media) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	r.posts[m.ID.Hex()] = m
	return nil
}

func (r *fakeMediaRepo) FindByID(_ context.Context, id string) (*models.Media, error) {
	m, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMediaRepo) FindAll(_ context.Context) ([]models.Media, error) {
	out := make([]models.Media, 0, len(r.posts))
	for _, m := range r.posts {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMediaRepo) FindByUser(_ context.Context, userID string) ([]models.Media, error) {
	var out []models.Media
	for _, m := range r.posts {
		if m.UserID.Hex() == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) FindByIDs(_ context.Context, ids []string) ([]models.Media, error) {
	var out []models.Media
	for _, id := range ids {
		if m, ok := r.posts[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) Update(_ context.Context, m *models.Media) error {
	if _, ok := r.posts[m.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *m
	r.posts[m.ID.Hex()] = &copied
	return nil
}

func (r *fakeMediaRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNoDocument
	}
	delete(r.posts, id)
	return nil
}

type fakeLikeRepo struct {
	likes []*models.Like
}

func (r *fakeLikeRepo) Insert(_ context.Context, l *models.Like) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	r.likes = append(r.likes, l)
	return nil
}

func (r *fakeLikeRepo) FindByPostAndUser(_ context.Context, postID, userID string) (*models.Like, error) {
	for _, l := range r.likes {
		if l.PostID.Hex() == postID && l.UserID.Hex() == userID {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeLikeRepo) DeleteByPostAndUser(_ context.Context, postID, userID string) error {
	kept := r.likes[:0]
	removed := false
	for _, l := range r.likes {
		if l.PostID.Hex() == postID && l.UserID.Hex() == userID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	r.likes = kept
	if !removed {
		return repository.ErrNoDocument
	}
	return nil
}

func (r *fakeLikeRepo) FindByPost(_ context.Context, postID string) ([]models.Like, error) {
	var out []models.Like
	for _, l := range r.likes {
		if l.PostID.Hex() == postID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLikeRepo) CountByPost(_ context.Context, postID string) (int64, error) {
	var n int64
	for _, l := range r.likes {
		if l.PostID.Hex() == postID {
			n++
		}
	}
	return n, nil
}

func (r *fakeLikeRepo) DeleteByPost(_ context.Context, postID string) error {
	kept := r.likes[:0]
	for _, l := range r.likes {
		if l.PostID.Hex() != postID {
			kept = append(kept, l)
		}
	}
	r.likes = kept
	return nil
}

type fakeCommentLikeRepo struct {
	likes []*models.CommentLike
}

func (r *fakeCommentLikeRepo) Insert(_ context.Context, l *models.CommentLike) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	r.likes = append(r.likes, l)
	return nil
}

func (r *fakeCommentLikeRepo) FindByCommentAndUser(_ context.Context, commentID, userID string) (*models.CommentLike, error) {
	for _, l := range r.likes {
		if l.CommentID.Hex() == commentID && l.UserID.Hex() == userID {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeCommentLikeRepo) DeleteByCommentAndUser(_ context.Context, commentID, userID string) error {
	kept := r.likes[:0]
	removed := false
	for _, l := range r.likes {
		if l.CommentID.Hex() == commentID && l.UserID.Hex() == userID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	r.likes = kept
	if !removed {
		return repository.ErrNoDocument
	}
	return nil
}

func (r *fakeCommentLikeRepo) FindByComment(_ context.Context, commentID string) ([]models.CommentLike, error) {
	var out []models.CommentLike
	for _, l := range r.likes {
		if l.CommentID.Hex() == commentID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeCommentLikeRepo) CountByComment(_ context.Context, commentID string) (int64, error) {
	var n int64
	for _, l := range r.likes {
		if l.CommentID.Hex() == commentID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCommentLikeRepo) DeleteByComment(_ context.Context, commentID string) error {
	kept := r.likes[:0]
	for _, l := range r.likes {
		if l.CommentID.Hex() != commentID {
			kept = append(kept, l)
		}
	}
	r.likes = kept
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*models.Comment{}}
}

func (r *fakeCommentRepo) Insert(_ context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.comments[c.ID.Hex()] = c
	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id string) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) FindByPost(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.PostID.Hex() == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) CountByPost(_ context.Context, postID string) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.PostID.Hex() == postID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c *models.Comment) error {
	if _, ok := r.comments[c.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *c
	r.comments[c.ID.Hex()] = &copied
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNoDocument
	}
	delete(r.comments, id)
	return nil
}

type fakeReplyRepo struct {
	replies map[string]*models.CommentReply
}

func newFakeReplyRepo() *fakeReplyRepo {
	return &fakeReplyRepo{replies: map[string]*models.CommentReply{}}
}

func (r *fakeReplyRepo) Insert(_ context.Context, reply *models.CommentReply) error {
	if reply.ID.IsZero() {
		reply.ID = primitive.NewObjectID()
	}
	r.replies[reply.ID.Hex()] = reply
	return nil
}

func (r *fakeReplyRepo) FindByID(_ context.Context, id string) (*models.CommentReply, error) {
	reply, ok := r.replies[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *reply
	return &copied, nil
}

func (r *fakeReplyRepo) FindByComment(_ context.Context, commentID string) ([]models.CommentReply, error) {
	var out []models.CommentReply
	for _, reply := range r.replies {
		if reply.CommentID.Hex() == commentID {
			out = append(out, *reply)
		}
	}
	return out, nil
}

func (r *fakeReplyRepo) CountByComment(_ context.Context, commentID string) (int64, error) {
	var n int64
	for _, reply := range r.replies {
		if reply.CommentID.Hex() == commentID {
			n++
		}
	}
	return n, nil
}

func (r *fakeReplyRepo) Update(_ context.Context, reply *models.CommentReply) error {
	if _, ok := r.replies[reply.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *reply
	r.replies[reply.ID.Hex()] = &copied
	return nil
}

func (r *fakeReplyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.replies[id]; !ok {
		return repository.ErrNoDocument
	}
	delete(r.replies, id)
	return nil
}

func (r *fakeReplyRepo) DeleteByComment(_ context.Context, commentID string) error {
	for id, reply := range r.replies {
		if reply.CommentID.Hex() == commentID {
			delete(r.replies, id)
		}
	}
	return nil
}

type fakeFollowRepo struct {
	follows []*models.Follow
}

func (r *fakeFollowRepo) Insert(_ context.Context, f *models.Follow) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	r.follows = append(r.follows, f)
	return nil
}

func (r *fakeFollowRepo) FindPair(_ context.Context, followerID, followingID string) (*models.Follow, error) {
	for _, f := range r.follows {
		if f.FollowerID.Hex() == followerID && f.FollowingID.Hex() == followingID {
			copied := *f
			return &copied, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeFollowRepo) DeletePair(_ context.Context, followerID, followingID string) error {
	kept := r.follows[:0]
	removed := false
	for _, f := range r.follows {
		if f.FollowerID.Hex() == followerID && f.FollowingID.Hex() == followingID {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	r.follows = kept
	if !removed {
		return repository.ErrNoDocument
	}
	return nil
}

func (r *fakeFollowRepo) FindFollowers(_ context.Context, followingID string) ([]models.Follow, error) {
	var out []models.Follow
	for _, f := range r.follows {
		if f.FollowingID.Hex() == followingID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) FindFollowing(_ context.Context, followerID string) ([]models.Follow, error) {
	var out []models.Follow
	for _, f := range r.follows {
		if f.FollowerID.Hex() == followerID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) CountFollowers(ctx context.Context, followingID string) (int64, error) {
	out, _ := r.FindFollowers(ctx, followingID)
	return int64(len(out)), nil
}

func (r *fakeFollowRepo) CountFollowing(ctx context.Context, followerID string) (int64, error) {
	out, _ := r.FindFollowing(ctx, followerID)
	return int64(len(out)), nil
}

type fakeNotificationRepo struct {
	notifications map[string]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*models.Notification{}}
}

func (r *fakeNotificationRepo) Insert(_ context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	r.notifications[n.ID.Hex()] = n
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id string) (*models.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepo) FindByRecipient(_ context.Context, recipientID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID.Hex() == recipientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) FindUnreadByRecipient(_ context.Context, recipientID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID.Hex() == recipientID && !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnreadByRecipient(ctx context.Context, recipientID string) (int64, error) {
	out, _ := r.FindUnreadByRecipient(ctx, recipientID)
	return int64(len(out)), nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, n *models.Notification) error {
	if _, ok := r.notifications[n.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *n
	r.notifications[n.ID.Hex()] = &copied
	return nil
}

type fakeSavedPostRepo struct {
	saved []*models.SavedPost
}

func (r *fakeSavedPostRepo) Insert(_ context.Context, s *models.SavedPost) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.saved = append(r.saved, s)
	return nil
}

func (r *fakeSavedPostRepo) FindByUserAndPost(_ context.Context, userID, postID string) (*models.SavedPost, error) {
	for _, s := range r.saved {
		if s.UserID.Hex() == userID && s.PostID.Hex() == postID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeSavedPostRepo) DeleteByUserAndPost(_ context.Context, userID, postID string) error {
	kept := r.saved[:0]
	removed := false
	for _, s := range r.saved {
		if s.UserID.Hex() == userID && s.PostID.Hex() == postID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	r.saved = kept
	if !removed {
		return repository.ErrNoDocument
	}
	return nil
}

func (r *fakeSavedPostRepo) FindByUser(_ context.Context, userID string) ([]models.SavedPost, error) {
	var out []models.SavedPost
	for _, s := range r.saved {
		if s.UserID.Hex() == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSavedPostRepo) DeleteByPost(_ context.Context, postID string) error {
	kept := r.saved[:0]
	for _, s := range r.saved {
		if s.PostID.Hex() != postID {
			kept = append(kept, s)
		}
	}
	r.saved = kept
	return nil
}

type fakeSharedPostRepo struct {
	shared []*models.SharedPost
}

func (r *fakeSharedPostRepo) Insert(_ context.Context, s *models.SharedPost) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.shared = append(r.shared, s)
	return nil
}

func (r *fakeSharedPostRepo) FindBySharedTo(_ context.Context, userID string) ([]models.SharedPost, error) {
	var out []models.SharedPost
	for _, s := range r.shared {
		if s.SharedToUserID.Hex() == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSharedPostRepo) DeleteByOriginalPost(_ context.Context, postID string) error {
	kept := r.shared[:0]
	for _, s := range r.shared {
		if s.OriginalPostID.Hex() != postID {
			kept = append(kept, s)
		}
	}
	r.shared = kept
	return nil
}

type fakeCourseRepo struct {
	courses map[string]*models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*models.Course{}}
}

func (r *fakeCourseRepo) Insert(_ context.Context, c *models.Course) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.courses[c.ID.Hex()] = c
	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id string) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCourseRepo) FindAll(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) SearchByTitle(_ context.Context, query string) ([]models.Course, error) {
	query = strings.ToLower(query)
	var out []models.Course
	for _, c := range r.courses {
		if strings.Contains(strings.ToLower(c.Title), query) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) FindByEnrolledUser(_ context.Context, userID string) ([]models.Course, error) {
	var out []models.Course
	for _, c := range r.courses {
		for _, id := range c.EnrolledUserIDs {
			if id == userID {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, c *models.Course) error {
	if _, ok := r.courses[c.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *c
	r.courses[c.ID.Hex()] = &copied
	return nil
}

type fakeSkillRepo struct {
	skills map[string]*models.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[string]*models.Skill{}}
}

func (r *fakeSkillRepo) Insert(_ context.Context, s *models.Skill) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.skills[s.ID.Hex()] = s
	return nil
}

func (r *fakeSkillRepo) FindByUser(_ context.Context, userID string) ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range r.skills {
		if s.UserID.Hex() == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.skills[id]; !ok {
		return repository.ErrNoDocument
	}
	delete(r.skills, id)
	return nil
}

type fakeProgressRepo struct {
	updates map[string]*models.ProgressUpdate
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{updates: map[string]*models.ProgressUpdate{}}
}

func (r *fakeProgressRepo) Insert(_ context.Context, p *models.ProgressUpdate) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.updates[p.ID.Hex()] = p
	return nil
}

func (r *fakeProgressRepo) FindByID(_ context.Context, id string) (*models.ProgressUpdate, error) {
	p, ok := r.updates[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProgressRepo) FindAll(_ context.Context) ([]models.ProgressUpdate, error) {
	out := make([]models.ProgressUpdate, 0, len(r.updates))
	for _, p := range r.updates {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProgressRepo) FindByUser(_ context.Context, userID string) ([]models.ProgressUpdate, error) {
	var out []models.ProgressUpdate
	for _, p := range r.updates {
		if p.UserID.Hex() == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) Update(_ context.Context, p *models.ProgressUpdate) error {
	if _, ok := r.updates[p.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	copied := *p
	r.updates[p.ID.Hex()] = &copied
	return nil
}

func (r *fakeProgressRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.updates[id]; !ok {
		return repository.ErrNoDocument
	}
	delete(r.updates, id)
	return nil
}

// noopNotifier satisfies Notifier for services under test that should
// not exercise the notification path.
type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string, string, string, string, string) error {
	return nil
}

func seedUser(repo *fakeUserRepo, name string) *models.User {
	u := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		AuthProvider: "local",
		Role:         "user",
	}
	repo.users[u.ID.Hex()] = u
	return u
}

func seedPost(repo *fakeMediaRepo, owner *models.User) *models.Media {
	m := &models.Media{
		ID:        primitive.NewObjectID(),
		UserID:    owner.ID,
		MediaType: models.MediaTypeImage,
		ImageURLs: []string{"https://res.cloudinary.com/demo/image/upload/v1/learnhub/images/a.jpg"},
	}
	repo.posts[m.ID.Hex()] = m
	return m
}
