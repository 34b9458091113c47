package models

// Role defines the user role type
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// DefaultCourseCapacity is used when a course is created without an explicit
// capacity.
const DefaultCourseCapacity = 80

// PostType defines the kind of a course post
type PostType string

const (
	PostTypeQuestion     PostType = "question"
	PostTypeAnnouncement PostType = "announcement"
	PostTypeDiscussion   PostType = "discussion"
	PostTypeEvent        PostType = "event"
)

// ValidPostType reports whether t is a known post type.
func ValidPostType(t PostType) bool {
	switch t {
	case PostTypeQuestion, PostTypeAnnouncement, PostTypeDiscussion, PostTypeEvent:
		return true
	}
	return false
}

// ReactionType defines the kind of a reaction
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionLove    ReactionType = "love"
	ReactionShocked ReactionType = "shocked"
	ReactionLaugh   ReactionType = "laugh"
	ReactionSad     ReactionType = "sad"
)

// ReactionTypes lists every reaction type in display order.
var ReactionTypes = []ReactionType{
	ReactionLike,
	ReactionLove,
	ReactionShocked,
	ReactionLaugh,
	ReactionSad,
}

// ValidReactionType reports whether t is a known reaction type.
func ValidReactionType(t ReactionType) bool {
	switch t {
	case ReactionLike, ReactionLove, ReactionShocked, ReactionLaugh, ReactionSad:
		return true
	}
	return false
}

// FileType is the MIME-derived classification of an uploaded file
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
	FileTypeWord  FileType = "word"
)
