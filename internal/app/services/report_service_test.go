package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduverse/eduverse/internal/app/repositories"
)

func newReportService(repo *fakeReportRepo) ReportService {
	return NewReportService(repo, zerolog.Nop())
}

func TestContributionScoreWeights(t *testing.T) {
	assert.Equal(t, 0, ContributionScore(0, 0, 0))
	assert.Equal(t, 5, ContributionScore(1, 0, 0))
	assert.Equal(t, 3, ContributionScore(0, 1, 0))
	assert.Equal(t, 1, ContributionScore(0, 0, 1))
	assert.Equal(t, 2*5+4*3+7, ContributionScore(2, 4, 7))
}

func TestEngagementScoreWeights(t *testing.T) {
	// 2 posts, 4 comments, 3 reactions: 2*3 + 4*2 + 3*1 = 17
	assert.Equal(t, 17, EngagementScore(2, 4, 3))
	assert.Equal(t, 0, EngagementScore(0, 0, 0))
}

func TestEnrollmentRate(t *testing.T) {
	assert.Equal(t, 50.0, EnrollmentRate(40, 80))
	assert.Equal(t, 33.3, EnrollmentRate(1, 3))
	// Zero capacity is treated as one seat.
	assert.Equal(t, 500.0, EnrollmentRate(5, 0))
	assert.Equal(t, 0.0, EnrollmentRate(0, 80))
}

func TestTopContributorsRankingAndLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	for i := 0; i < 15; i++ {
		repo.contributors = append(repo.contributors, repositories.ContributorCounts{
			UserID:     int64(i + 1),
			Name:       "user",
			PostsCount: i, // score = 5*i
		})
	}

	entries, err := newReportService(repo).TopContributors(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 10)
	assert.Equal(t, int64(15), entries[0].UserID)
	assert.Equal(t, 14*5, entries[0].ContributionScore)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].ContributionScore, entries[i].ContributionScore)
	}
}

func TestCourseEngagementUnknownCourseBucket(t *testing.T) {
	repo := &fakeReportRepo{
		engagement: []repositories.CourseEngagementCounts{
			{CourseID: "CS101", CourseName: "Intro", CourseExists: true, Enrolled: 30, TotalPosts: 2, TotalComments: 4, TotalReactions: 3},
			{CourseID: "GONE42", CourseName: "", CourseExists: false, Enrolled: 0, TotalPosts: 1},
		},
	}

	entries, err := newReportService(repo).CourseEngagement(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// CS101 scores 17 and sorts first.
	assert.Equal(t, "CS101", entries[0].CourseID)
	assert.Equal(t, 17, entries[0].EngagementScore)
	assert.Equal(t, 2.0, entries[0].AvgCommentsPerPost)

	assert.Equal(t, "General/Unknown", entries[1].CourseName)
	assert.Equal(t, 0, entries[1].Enrolled)
}

func TestCourseEngagementAvgCommentsZeroGuard(t *testing.T) {
	repo := &fakeReportRepo{
		engagement: []repositories.CourseEngagementCounts{
			{CourseID: "CS101", CourseExists: true, TotalPosts: 0, TotalComments: 0},
			{CourseID: "CS102", CourseExists: true, TotalPosts: 3, TotalComments: 1},
		},
	}

	entries, err := newReportService(repo).CourseEngagement(context.Background())
	require.NoError(t, err)

	byID := make(map[string]float64)
	for _, e := range entries {
		byID[e.CourseID] = e.AvgCommentsPerPost
	}
	assert.Equal(t, 0.0, byID["CS101"])
	assert.Equal(t, 0.33, byID["CS102"])
}

func TestReactionDistribution(t *testing.T) {
	repo := &fakeReportRepo{
		reactions: []repositories.ReactionCounts{
			{Type: "love", TotalCount: 2, UniqueUsersCount: 2, UniquePostsCount: 2, CoursesReached: 1},
			{Type: "like", TotalCount: 3, UniqueUsersCount: 2, UniquePostsCount: 3, CoursesReached: 2},
		},
	}

	report, err := newReportService(repo).ReactionDistribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, report.GrandTotal)
	assert.Equal(t, "like", report.MostPopularReaction)
	require.Len(t, report.ReactionBreakdown, 2)
	assert.Equal(t, "like", report.ReactionBreakdown[0].ReactionType)
	assert.Equal(t, 1.5, report.ReactionBreakdown[0].AvgReactionsPerUser)
}

func TestReactionDistributionEmpty(t *testing.T) {
	report, err := newReportService(&fakeReportRepo{}).ReactionDistribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.GrandTotal)
	assert.Equal(t, "", report.MostPopularReaction)
	assert.Empty(t, report.ReactionBreakdown)
}

func TestCoursePerformance(t *testing.T) {
	repo := &fakeReportRepo{
		performance: []repositories.CoursePerformanceCounts{
			{CourseID: "CS101", CourseName: "Intro", Capacity: 80, Enrolled: 40, TotalPosts: 2, TotalComments: 3, TotalReactions: 2, Questions: 1, Discussions: 1},
			{CourseID: "CS102", CourseName: "Data Structures", Capacity: 60, Enrolled: 60, TotalPosts: 0},
		},
		roster: []repositories.CourseInstructorRow{
			{CourseID: "CS101", Name: "Dr. Ada", Email: "ada@university.edu"},
		},
	}

	entries, err := newReportService(repo).CoursePerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Sorted by enrolled desc.
	assert.Equal(t, "CS102", entries[0].CourseID)
	assert.Equal(t, 100.0, entries[0].EnrollmentRate)
	assert.Equal(t, 0.0, entries[0].AvgEngagementPerPost)
	assert.Empty(t, entries[0].Instructors)

	assert.Equal(t, "CS101", entries[1].CourseID)
	assert.Equal(t, 50.0, entries[1].EnrollmentRate)
	assert.Equal(t, 2.5, entries[1].AvgEngagementPerPost)
	require.Len(t, entries[1].Instructors, 1)
	assert.Equal(t, "Dr. Ada", entries[1].Instructors[0].Name)
	assert.Equal(t, 1, entries[1].PostsByType.Questions)
}
