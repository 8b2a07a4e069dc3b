package constant

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusCalled     LeadStatus = "called"
	LeadStatusRejected   LeadStatus = "rejected"
	LeadStatusInterested LeadStatus = "interested"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusCalled, LeadStatusRejected, LeadStatusInterested:
		return true
	}
	return false
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled:
		return true
	}
	return false
}
