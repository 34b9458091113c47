package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/helpers"
)

// Scoring weights for the contributor and engagement reports.
const (
	contributionPostWeight    = 5
	contributionCommentWeight = 3
	contributionReactWeight   = 1

	engagementPostWeight    = 3
	engagementCommentWeight = 2
	engagementReactWeight   = 1

	topContributorsLimit = 10
)

// unknownCourseBucket groups posts whose course no longer exists.
const unknownCourseBucket = "General/Unknown"

// ReportService computes the instructor analytics reports. Raw counts come
// from aggregation SQL; weighting, rounding and ordering happen here. Every
// call recomputes from scratch.
type ReportService interface {
	TopContributors(ctx context.Context) ([]dto.ContributorEntry, error)
	CourseEngagement(ctx context.Context) ([]dto.CourseEngagementEntry, error)
	ReactionDistribution(ctx context.Context) (*dto.ReactionDistributionReport, error)
	CoursePerformance(ctx context.Context) ([]dto.CoursePerformanceEntry, error)
}

type reportServiceImpl struct {
	reportRepo repositories.IReportRepository
	logger     zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repositories.IReportRepository, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{reportRepo: reportRepo, logger: logger}
}

// EnrollmentRate is the filled share of a course as a percentage with one
// decimal. A zero capacity is treated as one seat to keep the rate defined.
func EnrollmentRate(enrolled, capacity int) float64 {
	if capacity < 1 {
		capacity = 1
	}
	return helpers.Round1(float64(enrolled) / float64(capacity) * 100)
}

func roundedRatio2(num, den int) float64 {
	return helpers.Round2(helpers.SafeRatio(num, den))
}

// ContributionScore weighs a user's authored content and given reactions.
func ContributionScore(posts, comments, reactionsGiven int) int {
	return posts*contributionPostWeight + comments*contributionCommentWeight + reactionsGiven*contributionReactWeight
}

// EngagementScore weighs the activity volume inside a course.
func EngagementScore(posts, comments, reactions int) int {
	return posts*engagementPostWeight + comments*engagementCommentWeight + reactions*engagementReactWeight
}

// TopContributors ranks users by contribution score and returns the top ten
func (s *reportServiceImpl) TopContributors(ctx context.Context) ([]dto.ContributorEntry, error) {
	counts, err := s.reportRepo.ContributorCounts(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ContributorEntry, 0, len(counts))
	for _, c := range counts {
		entries = append(entries, dto.ContributorEntry{
			UserID:                 c.UserID,
			Name:                   c.Name,
			Email:                  c.Email,
			Role:                   c.Role,
			Level:                  c.Level,
			PostsCount:             c.PostsCount,
			CommentsCount:          c.CommentsCount,
			ReactionsGivenCount:    c.ReactionsGiven,
			ReactionsReceivedCount: c.ReactionsReceived,
			QuestionsAsked:         c.QuestionsAsked,
			AnnouncementsMade:      c.AnnouncementsMade,
			ContributionScore:      ContributionScore(c.PostsCount, c.CommentsCount, c.ReactionsGiven),
			PopularityScore:        c.ReactionsReceived,
			MemberSince:            c.MemberSince,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ContributionScore > entries[j].ContributionScore
	})

	if len(entries) > topContributorsLimit {
		entries = entries[:topContributorsLimit]
	}
	return entries, nil
}

// CourseEngagement summarizes activity per course id found on posts. Posts
// referencing a deleted course land in a shared unknown bucket.
func (s *reportServiceImpl) CourseEngagement(ctx context.Context) ([]dto.CourseEngagementEntry, error) {
	counts, err := s.reportRepo.CourseEngagementCounts(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.CourseEngagementEntry, 0, len(counts))
	for _, c := range counts {
		name := c.CourseName
		enrolled := c.Enrolled
		if !c.CourseExists {
			name = unknownCourseBucket
			enrolled = 0
		}

		entries = append(entries, dto.CourseEngagementEntry{
			CourseID:           c.CourseID,
			CourseName:         name,
			Enrolled:           enrolled,
			TotalPosts:         c.TotalPosts,
			Announcements:      c.Announcements,
			Questions:          c.Questions,
			Discussions:        c.Discussions,
			TotalComments:      c.TotalComments,
			TotalReactions:     c.TotalReactions,
			UniqueContributors: c.UniqueContributors,
			EngagementScore:    EngagementScore(c.TotalPosts, c.TotalComments, c.TotalReactions),
			AvgCommentsPerPost: roundedRatio2(c.TotalComments, c.TotalPosts),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EngagementScore > entries[j].EngagementScore
	})
	return entries, nil
}

// ReactionDistribution breaks down reactions by type across all posts
func (s *reportServiceImpl) ReactionDistribution(ctx context.Context) (*dto.ReactionDistributionReport, error) {
	counts, err := s.reportRepo.ReactionCounts(ctx)
	if err != nil {
		return nil, err
	}

	grandTotal := 0
	breakdown := make([]dto.ReactionBreakdownEntry, 0, len(counts))
	for _, c := range counts {
		grandTotal += c.TotalCount
		breakdown = append(breakdown, dto.ReactionBreakdownEntry{
			ReactionType:        c.Type,
			TotalCount:          c.TotalCount,
			UniqueUsersCount:    c.UniqueUsersCount,
			UniquePostsCount:    c.UniquePostsCount,
			CoursesReached:      c.CoursesReached,
			AvgReactionsPerUser: roundedRatio2(c.TotalCount, c.UniqueUsersCount),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalCount > breakdown[j].TotalCount
	})

	mostPopular := ""
	if len(breakdown) > 0 {
		mostPopular = breakdown[0].ReactionType
	}

	return &dto.ReactionDistributionReport{
		GrandTotal:          grandTotal,
		ReactionBreakdown:   breakdown,
		MostPopularReaction: mostPopular,
	}, nil
}

// CoursePerformance summarizes enrollment and activity for every course
func (s *reportServiceImpl) CoursePerformance(ctx context.Context) ([]dto.CoursePerformanceEntry, error) {
	counts, err := s.reportRepo.CoursePerformanceCounts(ctx)
	if err != nil {
		return nil, err
	}

	roster, err := s.reportRepo.InstructorsByCourse(ctx)
	if err != nil {
		return nil, err
	}

	instructors := make(map[string][]dto.InstructorInfo)
	for _, row := range roster {
		instructors[row.CourseID] = append(instructors[row.CourseID], dto.InstructorInfo{
			Name:  row.Name,
			Email: row.Email,
		})
	}

	entries := make([]dto.CoursePerformanceEntry, 0, len(counts))
	for _, c := range counts {
		entries = append(entries, dto.CoursePerformanceEntry{
			CourseID:             c.CourseID,
			CourseName:           c.CourseName,
			Description:          c.Description,
			CreditHours:          c.CreditHours,
			Enrolled:             c.Enrolled,
			Capacity:             c.Capacity,
			Instructors:          instructors[c.CourseID],
			EnrollmentRate:       EnrollmentRate(c.Enrolled, c.Capacity),
			TotalPosts:           c.TotalPosts,
			PostsByType:          dto.PostTypeBreakdown{Questions: c.Questions, Announcements: c.Announcements, Discussions: c.Discussions, Events: c.Events},
			TotalComments:        c.TotalComments,
			TotalReactions:       c.TotalReactions,
			UniqueContributors:   c.UniqueContributors,
			AvgEngagementPerPost: roundedRatio2(c.TotalComments+c.TotalReactions, c.TotalPosts),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Enrolled > entries[j].Enrolled
	})
	return entries, nil
}
