package models

// Content status values shared by blog posts and projects.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Contact status values.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Newsletter status values.
const (
	NewsletterStatusActive       = "active"
	NewsletterStatusUnsubscribed = "unsubscribed"
)

// Project difficulty values.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)
