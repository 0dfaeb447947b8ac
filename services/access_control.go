package services

import "newsroom/models"

// Action names an operation checked by the access gate.
type Action string

const (
	ActionCreateArticle    Action = "article.create"
	ActionEditArticle      Action = "article.edit"
	ActionApproveArticle   Action = "article.approve"
	ActionRejectArticle    Action = "article.reject"
	ActionViewArticle      Action = "article.view"
	ActionCreateNewsletter Action = "newsletter.create"
	ActionManageTeam       Action = "publisher.manage_team"
	ActionManagePublisher  Action = "publisher.manage"
	ActionSubscribe        Action = "subscription.create"
	ActionUnsubscribe      Action = "subscription.delete"
)

// Stable deny reason codes. The presentation layer maps these to
// user-facing messages; tests assert on them directly.
const (
	ReasonNotJournalist      = "not_journalist"
	ReasonNotReader          = "not_reader"
	ReasonNotEditor          = "not_editor"
	ReasonNotPublisherEditor = "not_publisher_editor"
	ReasonNotStaff           = "not_staff"
	ReasonNoPublisherScope   = "no_publisher_scope"
	ReasonNotOwner           = "not_owner"
	ReasonNotAuthorOrEditor  = "not_author_or_editor"
	ReasonNotPublished       = "not_published"
	ReasonUnknownAction      = "unknown_action"
)

type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func Allow() Decision             { return Decision{Allowed: true} }
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Err converts a deny into the matching domain error kind; nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonNoPublisherScope:
		return models.NewDomainError(models.ErrNoPublisherScope, "article has no publisher; approval requires publisher scope")
	case ReasonNotOwner, ReasonNotAuthorOrEditor:
		return models.NewDomainError(models.ErrNotOwner, "actor does not own the target")
	case ReasonNotPublished:
		return models.NewDomainError(models.ErrNotFound, "article not found")
	default:
		return models.NewDomainError(models.ErrRoleMismatch, "role does not permit this action: "+d.Reason)
	}
}

// Target carries the entity an action applies to. Only the field relevant
// to the action needs to be set, with associations loaded by the caller.
type Target struct {
	Article      *models.Article
	Publisher    *models.Publisher
	Subscription *models.Subscription
}

// AccessControl is the single authorization decision point. It is pure:
// it inspects the snapshot it is given and performs no I/O and no
// mutation.
type AccessControl struct{}

func NewAccessControl() *AccessControl { return &AccessControl{} }

func (ac *AccessControl) Authorize(actor *models.User, action Action, target Target) Decision {
	switch action {
	case ActionCreateArticle, ActionCreateNewsletter:
		if !actor.IsJournalist() {
			return Deny(ReasonNotJournalist)
		}
		return Allow()

	case ActionEditArticle:
		article := target.Article
		if article.AuthorID == actor.ID {
			return Allow()
		}
		if article.Publisher != nil && article.Publisher.HasEditor(actor.ID) {
			return Allow()
		}
		return Deny(ReasonNotAuthorOrEditor)

	case ActionApproveArticle, ActionRejectArticle:
		if !actor.IsEditor() {
			return Deny(ReasonNotEditor)
		}
		article := target.Article
		if article.Publisher == nil {
			return Deny(ReasonNoPublisherScope)
		}
		if !article.Publisher.HasEditor(actor.ID) {
			return Deny(ReasonNotPublisherEditor)
		}
		return Allow()

	case ActionViewArticle:
		article := target.Article
		if article.Status == models.StatusPublished {
			return Allow()
		}
		if article.AuthorID == actor.ID || actor.IsStaff() {
			return Allow()
		}
		if article.Publisher != nil && article.Publisher.HasEditor(actor.ID) {
			return Allow()
		}
		return Deny(ReasonNotPublished)

	case ActionManageTeam:
		if !target.Publisher.IsOwner(actor.ID) {
			return Deny(ReasonNotOwner)
		}
		return Allow()

	case ActionManagePublisher:
		if !actor.IsStaff() {
			return Deny(ReasonNotStaff)
		}
		return Allow()

	case ActionSubscribe:
		if !actor.IsReader() {
			return Deny(ReasonNotReader)
		}
		return Allow()

	case ActionUnsubscribe:
		if !actor.IsReader() {
			return Deny(ReasonNotReader)
		}
		if target.Subscription.UserID != actor.ID {
			return Deny(ReasonNotOwner)
		}
		return Allow()
	}

	return Deny(ReasonUnknownAction)
}
