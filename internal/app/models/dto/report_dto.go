package dto

import "time"

// ContributorEntry is one row of the top-contributors leaderboard
type ContributorEntry struct {
	UserID                 int64     `json:"userId"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Role                   string    `json:"role"`
	Level                  string    `json:"level,omitempty"`
	PostsCount             int       `json:"postsCount"`
	CommentsCount          int       `json:"commentsCount"`
	ReactionsGivenCount    int       `json:"reactionsGivenCount"`
	ReactionsReceivedCount int       `json:"reactionsReceivedCount"`
	QuestionsAsked         int       `json:"questionsAsked"`
	AnnouncementsMade      int       `json:"announcementsMade"`
	ContributionScore      int       `json:"contributionScore"`
	PopularityScore        int       `json:"popularityScore"`
	MemberSince            time.Time `json:"memberSince"`
}

// CourseEngagementEntry is one row of the per-course engagement report
type CourseEngagementEntry struct {
	CourseID           string  `json:"courseId"`
	CourseName         string  `json:"courseName"`
	Enrolled           int     `json:"enrolled"`
	TotalPosts         int     `json:"totalPosts"`
	Announcements      int     `json:"announcements"`
	Questions          int     `json:"questions"`
	Discussions        int     `json:"discussions"`
	TotalComments      int     `json:"totalComments"`
	TotalReactions     int     `json:"totalReactions"`
	UniqueContributors int     `json:"uniqueContributors"`
	EngagementScore    int     `json:"engagementScore"`
	AvgCommentsPerPost float64 `json:"avgCommentsPerPost"`
}

// ReactionBreakdownEntry is one row of the reaction-distribution report
type ReactionBreakdownEntry struct {
	ReactionType        string  `json:"reactionType"`
	TotalCount          int     `json:"totalCount"`
	UniqueUsersCount    int     `json:"uniqueUsersCount"`
	UniquePostsCount    int     `json:"uniquePostsCount"`
	CoursesReached      int     `json:"coursesReached"`
	AvgReactionsPerUser float64 `json:"avgReactionsPerUser"`
}

// ReactionDistributionReport is the full reaction-distribution analysis
type ReactionDistributionReport struct {
	GrandTotal          int                      `json:"grandTotal"`
	ReactionBreakdown   []ReactionBreakdownEntry `json:"reactionBreakdown"`
	MostPopularReaction string                   `json:"mostPopularReaction"`
}

// PostTypeBreakdown groups post counts by type
type PostTypeBreakdown struct {
	Questions     int `json:"questions"`
	Announcements int `json:"announcements"`
	Discussions   int `json:"discussions"`
	Events        int `json:"events"`
}

// CoursePerformanceEntry is one row of the course-performance report
type CoursePerformanceEntry struct {
	CourseID             string             `json:"courseId"`
	CourseName           string             `json:"courseName"`
	Description          string             `json:"description"`
	CreditHours          int                `json:"creditHours"`
	Enrolled             int                `json:"enrolled"`
	Capacity             int                `json:"capacity"`
	Instructors          []InstructorInfo   `json:"instructors"`
	EnrollmentRate       float64            `json:"enrollmentRate"`
	TotalPosts           int                `json:"totalPosts"`
	PostsByType          PostTypeBreakdown  `json:"postsByType"`
	TotalComments        int                `json:"totalComments"`
	TotalReactions       int                `json:"totalReactions"`
	UniqueContributors   int                `json:"uniqueContributors"`
	AvgEngagementPerPost float64            `json:"avgEngagementPerPost"`
}

// InstructorInfo is the instructor summary attached to performance rows
type InstructorInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
