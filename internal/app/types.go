package app

type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Gender          string `json:"gender"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account. Email and the password
// digest are deliberately absent.
type UserResponse struct {
	ID         string `json:"_id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Username   string `json:"username"`
	ProfilePic string `json:"profilePic"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type VerifiedResponse struct {
	IsEmailVerified bool `json:"isEmailVerified"`
}

type MovieEntryRequest struct {
	MovieID    int64  `json:"movieId"`
	Title      string `json:"title"`
	CoverImage string `json:"coverImage"`
}

type MoveMovieRequest struct {
	MovieID int64 `json:"movieId"`
}

type LivenessResponse struct {
	Status     string `json:"status"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}
