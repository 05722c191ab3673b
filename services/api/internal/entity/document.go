package entity

import "time"

// Collection names double as route segments and cache/event keys.
const (
	CollectionBlog         = "blog"
	CollectionCertificates = "certificates"
	CollectionEducation    = "education"
	CollectionExperience   = "experience"
	CollectionProjects     = "projects"
	CollectionReviews      = "reviews"
)

// Collections lists every content collection in dashboard order.
var Collections = []string{
	CollectionBlog,
	CollectionCertificates,
	CollectionEducation,
	CollectionExperience,
	CollectionProjects,
	CollectionReviews,
}

// Document is implemented by every content collection entity.
type Document interface {
	GetID() string
}

// Defaulter fills server-side defaults before a document is first stored.
type Defaulter interface {
	ApplyDefaults(now time.Time)
}
