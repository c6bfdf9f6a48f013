package handlers

import "github.com/serroba/tinyurl/internal/user"

// CreateTinyRequest is the request for creating a short code.
type CreateTinyRequest struct {
	Body struct {
		LongURL  string `doc:"The URL to shorten"                                json:"longUrl"            example:"https://example.com/very/long/path"`
		UserName string `doc:"Owner to credit click analytics to"                json:"userName,omitempty" example:"bob" required:"false"`
	}
}

// CreateTinyResponse is the response for a successfully created short code.
type CreateTinyResponse struct {
	Body struct {
		Code     string `doc:"The short code"     json:"code"     example:"Ab3xQ9"`
		ShortURL string `doc:"The full short URL" json:"shortUrl" example:"http://localhost:8888/Ab3xQ9"`
	}
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"Ab3xQ9" path:"code"`
}

// RedirectResponse redirects the caller to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// CreateUserRequest is the request for creating a user.
type CreateUserRequest struct {
	Name string `doc:"Unique user name" example:"bob" query:"name" required:"true"`
}

// GetUserRequest is the request for fetching a user by name.
type GetUserRequest struct {
	Name string `doc:"User name" example:"bob" path:"name"`
}

// UserResponse carries a user with its click counters.
type UserResponse struct {
	Body user.User
}

// ListClicksRequest is the request for a user's click history.
type ListClicksRequest struct {
	Name string `doc:"User name" example:"bob" path:"name"`
}

// ListClicksResponse carries a user's click history.
type ListClicksResponse struct {
	Body struct {
		Clicks []user.ClickView `json:"clicks"`
	}
}

// GetKeyRequest is the request for reading a raw key-value entry.
type GetKeyRequest struct {
	Key string `doc:"Raw store key" path:"key"`
}

// GetKeyResponse carries a raw key-value entry.
type GetKeyResponse struct {
	Body struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
}

// SetKeyRequest is the request for writing a raw key-value entry.
type SetKeyRequest struct {
	Key  string `doc:"Raw store key" path:"key"`
	Body struct {
		Value string `doc:"Value to store" json:"value"`
	}
}

// SetKeyResponse reports the outcome of a raw key-value write.
type SetKeyResponse struct {
	Body struct {
		Accepted bool   `json:"accepted"`
		Previous string `json:"previous,omitempty"`
	}
}
