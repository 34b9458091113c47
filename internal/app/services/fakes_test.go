package services

import (
	"context"
	"time"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// In-memory repository fakes. Each one implements the corresponding
// repository interface with just enough behavior for the service tests;
// optional function fields override individual methods.

type fakeUserRepo struct {
	users          map[int64]*models.User
	updatedProfile *models.User
	fanOutCalled   bool
	fanOutValue    bool
	passwordSet    string
	resetTokens    map[string]int64
}

var _ repositories.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:       make(map[int64]*models.User),
		resetTokens: make(map[string]int64),
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	result := make(map[int64]*models.User)
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *models.User, fanOut bool) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = user
	f.updatedProfile = user
	f.fanOutCalled = true
	f.fanOutValue = fanOut
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	f.passwordSet = hashedPassword
	for token, id := range f.resetTokens {
		if id == userID {
			delete(f.resetTokens, token)
		}
	}
	return nil
}

func (f *fakeUserRepo) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	f.resetTokens[token] = userID
	return nil
}

func (f *fakeUserRepo) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	if id, ok := f.resetTokens[token]; ok {
		return f.users[id], nil
	}
	return nil, apperrors.ErrInvalidPasswordResetToken
}

func (f *fakeUserRepo) Search(ctx context.Context, requesterID int64, query string, role string, limit int) ([]*models.User, error) {
	var results []*models.User
	for _, user := range f.users {
		if user.ID == requesterID {
			continue
		}
		if role != "" && string(user.Role) != role {
			continue
		}
		results = append(results, user)
	}
	return results, nil
}

func (f *fakeUserRepo) GetStats(ctx context.Context, userID int64) (int64, int64, int64, int64, error) {
	return 0, 0, 0, 0, nil
}

type fakePostRepo struct {
	posts  map[int64]*models.Post
	nextID int64
}

var _ repositories.IPostRepository = (*fakePostRepo)(nil)

func newFakePostRepo(posts ...*models.Post) *fakePostRepo {
	repo := &fakePostRepo{posts: make(map[int64]*models.Post)}
	for _, p := range posts {
		repo.posts[p.ID] = p
		if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
	}
	return repo
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	if post, ok := f.posts[id]; ok {
		return post, nil
	}
	return nil, apperrors.ErrPostNotFound
}

func (f *fakePostRepo) List(ctx context.Context, filter dto.PostFilter) ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range f.posts {
		if filter.CourseID != "" && post.CourseID != filter.CourseID {
			continue
		}
		if filter.Type != "" && string(post.Type) != filter.Type {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (f *fakePostRepo) ListBySender(ctx context.Context, senderID int64) ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range f.posts {
		if post.Sender.ID == senderID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return apperrors.ErrPostNotFound
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64
}

var _ repositories.ICommentRepository = (*fakeCommentRepo)(nil)

func newFakeCommentRepo(comments ...*models.Comment) *fakeCommentRepo {
	repo := &fakeCommentRepo{comments: make(map[int64]*models.Comment)}
	for _, c := range comments {
		repo.comments[c.ID] = c
		if c.ID > repo.nextID {
			repo.nextID = c.ID
		}
	}
	return repo
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}
	return nil, apperrors.ErrCommentNotFound
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return apperrors.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

type reactionKey struct {
	postID   int64
	senderID int64
}

type fakeReactionRepo struct {
	reactions map[reactionKey]*models.Reaction
	nextID    int64
}

var _ repositories.IReactionRepository = (*fakeReactionRepo)(nil)

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[reactionKey]*models.Reaction)}
}

func (f *fakeReactionRepo) Upsert(ctx context.Context, reaction *models.Reaction) error {
	key := reactionKey{reaction.PostID, reaction.SenderID}
	if existing, ok := f.reactions[key]; ok {
		existing.Type = reaction.Type
		reaction.ID = existing.ID
		return nil
	}
	f.nextID++
	reaction.ID = f.nextID
	reaction.CreatedAt = time.Now()
	f.reactions[key] = reaction
	return nil
}

func (f *fakeReactionRepo) ListByPost(ctx context.Context, postID int64) ([]*models.Reaction, error) {
	var reactions []*models.Reaction
	for _, reaction := range f.reactions {
		if reaction.PostID == postID {
			reactions = append(reactions, reaction)
		}
	}
	return reactions, nil
}

func (f *fakeReactionRepo) SummaryByPost(ctx context.Context, postID int64) (map[models.ReactionType]int64, error) {
	summary := make(map[models.ReactionType]int64)
	for _, reaction := range f.reactions {
		if reaction.PostID == postID {
			summary[reaction.Type]++
		}
	}
	return summary, nil
}

func (f *fakeReactionRepo) GetByPostAndSender(ctx context.Context, postID, senderID int64) (*models.Reaction, error) {
	if reaction, ok := f.reactions[reactionKey{postID, senderID}]; ok {
		return reaction, nil
	}
	return nil, apperrors.ErrReactionNotFound
}

func (f *fakeReactionRepo) Delete(ctx context.Context, postID, senderID int64) error {
	key := reactionKey{postID, senderID}
	if _, ok := f.reactions[key]; !ok {
		return apperrors.ErrReactionNotFound
	}
	delete(f.reactions, key)
	return nil
}

type fakeChatRepo struct {
	chats       map[int64]*models.Chat
	nextID      int64
	lastPreview string
}

var _ repositories.IChatRepository = (*fakeChatRepo)(nil)

func newFakeChatRepo(chats ...*models.Chat) *fakeChatRepo {
	repo := &fakeChatRepo{chats: make(map[int64]*models.Chat)}
	for _, c := range chats {
		repo.chats[c.ID] = c
		if c.ID > repo.nextID {
			repo.nextID = c.ID
		}
	}
	return repo
}

func (f *fakeChatRepo) GetOrCreate(ctx context.Context, user1, user2 models.Sender) (*models.Chat, bool, error) {
	if chat, err := f.GetByPair(ctx, user1.ID, user2.ID); err == nil {
		return chat, false, nil
	}
	f.nextID++
	chat := &models.Chat{
		ID:        f.nextID,
		User1:     user1,
		User2:     user2,
		UpdatedAt: time.Now(),
	}
	f.chats[chat.ID] = chat
	return chat, true, nil
}

func (f *fakeChatRepo) GetByID(ctx context.Context, id int64) (*models.Chat, error) {
	if chat, ok := f.chats[id]; ok {
		return chat, nil
	}
	return nil, apperrors.ErrChatNotFound
}

func (f *fakeChatRepo) GetByPair(ctx context.Context, userA, userB int64) (*models.Chat, error) {
	for _, chat := range f.chats {
		if chat.HasParticipant(userA) && chat.HasParticipant(userB) {
			return chat, nil
		}
	}
	return nil, apperrors.ErrChatNotFound
}

func (f *fakeChatRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Chat, error) {
	var chats []*models.Chat
	for _, chat := range f.chats {
		if chat.HasParticipant(userID) {
			chats = append(chats, chat)
		}
	}
	return chats, nil
}

func (f *fakeChatRepo) UpdateLastMessage(ctx context.Context, chatID int64, preview string) error {
	chat, ok := f.chats[chatID]
	if !ok {
		return apperrors.ErrChatNotFound
	}
	chat.LastMessage = preview
	chat.UpdatedAt = time.Now()
	f.lastPreview = preview
	return nil
}

type fakeMessageRepo struct {
	messages map[int64]*models.Message
	nextID   int64
}

var _ repositories.IMessageRepository = (*fakeMessageRepo)(nil)

func newFakeMessageRepo(messages ...*models.Message) *fakeMessageRepo {
	repo := &fakeMessageRepo{messages: make(map[int64]*models.Message)}
	for _, m := range messages {
		repo.messages[m.ID] = m
		if m.ID > repo.nextID {
			repo.nextID = m.ID
		}
	}
	return repo
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	f.nextID++
	message.ID = f.nextID
	message.CreatedAt = time.Now()
	f.messages[message.ID] = message
	return nil
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	if message, ok := f.messages[id]; ok {
		return message, nil
	}
	return nil, apperrors.ErrMessageNotFound
}

func (f *fakeMessageRepo) ListByPair(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	var messages []*models.Message
	for _, message := range f.messages {
		pairMatch := (message.SenderID == userA && message.ReceiverID == userB) ||
			(message.SenderID == userB && message.ReceiverID == userA)
		if pairMatch {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.messages[id]; !ok {
		return apperrors.ErrMessageNotFound
	}
	delete(f.messages, id)
	return nil
}

type fakeCourseRepo struct {
	courses     map[string]*models.Course
	instructors map[string][]int64
	enrollments map[string][]int64
}

var _ repositories.ICourseRepository = (*fakeCourseRepo)(nil)

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	repo := &fakeCourseRepo{
		courses:     make(map[string]*models.Course),
		instructors: make(map[string][]int64),
		enrollments: make(map[string][]int64),
	}
	for _, c := range courses {
		repo.courses[c.ID] = c
	}
	return repo
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course, instructorID int64) error {
	if _, ok := f.courses[course.ID]; ok {
		return apperrors.ErrCourseAlreadyExists
	}
	f.courses[course.ID] = course
	f.instructors[course.ID] = []int64{instructorID}
	return nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if course, ok := f.courses[id]; ok {
		return course, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range f.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

func (f *fakeCourseRepo) ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for courseID, userIDs := range f.enrollments {
		for _, id := range userIDs {
			if id == userID {
				courses = append(courses, f.courses[courseID])
			}
		}
	}
	return courses, nil
}

func (f *fakeCourseRepo) ListTaught(ctx context.Context, userID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for courseID, userIDs := range f.instructors {
		for _, id := range userIDs {
			if id == userID {
				courses = append(courses, f.courses[courseID])
			}
		}
	}
	return courses, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) IsInstructor(ctx context.Context, courseID string, userID int64) (bool, error) {
	for _, id := range f.instructors[courseID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseRepo) Enroll(ctx context.Context, courseID string, userID int64) error {
	course, ok := f.courses[courseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, id := range f.enrollments[courseID] {
		if id == userID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	if course.Enrolled >= course.Capacity {
		return apperrors.ErrCourseFull
	}
	f.enrollments[courseID] = append(f.enrollments[courseID], userID)
	course.Enrolled++
	return nil
}

func (f *fakeCourseRepo) Unenroll(ctx context.Context, courseID string, userID int64) error {
	ids := f.enrollments[courseID]
	for i, id := range ids {
		if id == userID {
			f.enrollments[courseID] = append(ids[:i], ids[i+1:]...)
			if f.courses[courseID].Enrolled > 0 {
				f.courses[courseID].Enrolled--
			}
			return nil
		}
	}
	return apperrors.ErrNotEnrolled
}

type fakeFileRepo struct {
	files  map[int64]*models.File
	nextID int64
}

var _ repositories.IFileRepository = (*fakeFileRepo)(nil)

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[int64]*models.File)}
}

func (f *fakeFileRepo) Create(ctx context.Context, file *models.File) error {
	f.nextID++
	file.ID = f.nextID
	file.CreatedAt = time.Now()
	f.files[file.ID] = file
	return nil
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id int64) (*models.File, error) {
	if file, ok := f.files[id]; ok {
		return file, nil
	}
	return nil, apperrors.ErrFileNotFound
}

func (f *fakeFileRepo) ListByCourse(ctx context.Context, courseID string) ([]*models.File, error) {
	var files []*models.File
	for _, file := range f.files {
		if file.CourseID != nil && *file.CourseID == courseID {
			files = append(files, file)
		}
	}
	return files, nil
}

func (f *fakeFileRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.files[id]; !ok {
		return apperrors.ErrFileNotFound
	}
	delete(f.files, id)
	return nil
}

type fakeReportRepo struct {
	contributors []repositories.ContributorCounts
	engagement   []repositories.CourseEngagementCounts
	reactions    []repositories.ReactionCounts
	performance  []repositories.CoursePerformanceCounts
	roster       []repositories.CourseInstructorRow
}

var _ repositories.IReportRepository = (*fakeReportRepo)(nil)

func (f *fakeReportRepo) ContributorCounts(ctx context.Context) ([]repositories.ContributorCounts, error) {
	return f.contributors, nil
}

func (f *fakeReportRepo) CourseEngagementCounts(ctx context.Context) ([]repositories.CourseEngagementCounts, error) {
	return f.engagement, nil
}

func (f *fakeReportRepo) ReactionCounts(ctx context.Context) ([]repositories.ReactionCounts, error) {
	return f.reactions, nil
}

func (f *fakeReportRepo) CoursePerformanceCounts(ctx context.Context) ([]repositories.CoursePerformanceCounts, error) {
	return f.performance, nil
}

func (f *fakeReportRepo) InstructorsByCourse(ctx context.Context) ([]repositories.CourseInstructorRow, error) {
	return f.roster, nil
}
