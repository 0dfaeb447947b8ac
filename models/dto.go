package models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"max=30"`
	LastName  string `json:"last_name" binding:"max=30"`
	Role      Role   `json:"role,omitempty" binding:"omitempty,oneof=reader journalist editor publisher staff"`

	// For editors/journalists: join an existing publishing house.
	PublisherID *uint `json:"publisher_id,omitempty"`
	// For the publisher role: create a new publishing house.
	PublisherName        string `json:"publisher_name,omitempty" binding:"max=100"`
	PublisherDescription string `json:"publisher_description,omitempty"`
	PublisherWebsite     string `json:"publisher_website,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Summary     string `json:"summary"`
	Content     string `json:"content" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
	CategoryID  *uint  `json:"category_id"`
}

// UpdateArticleRequest carries content-only fields; workflow status is
// never mutated through an edit.
type UpdateArticleRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255"`
	Summary    string `json:"summary"`
	Content    string `json:"content" binding:"required"`
	CategoryID *uint  `json:"category_id"`
}

type ArticleListParams struct {
	Status    string `form:"status"`
	Category  string `form:"category"`
	Publisher string `form:"publisher"`
	Query     string `form:"q"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

type CreateNewsletterRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Content     string `json:"content" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type SubscribeRequest struct {
	PublisherID  *uint `json:"publisher_id"`
	JournalistID *uint `json:"journalist_id"`
}

type PublisherRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Website     string `json:"website"`
	OwnerID     *uint  `json:"owner_id"`
}

type AddTeamMemberRequest struct {
	Username string `json:"username" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=editor journalist"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type PublisherDashboard struct {
	Publisher       Publisher    `json:"publisher"`
	Articles        []Article    `json:"articles"`
	Newsletters     []Newsletter `json:"newsletters"`
	ArticleCount    int64        `json:"article_count"`
	SubscriberCount int64        `json:"subscriber_count"`
}
