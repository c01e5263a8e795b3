package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.Request(ctx, http.MethodPost, "auth/login", "", JSON(LoginRequest{Username: username, Password: password}), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.Request(ctx, http.MethodPost, "auth/register", "", JSON(RegisterRequest{Username: username, Email: email, Password: password}), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email string) error {
	return c.Request(ctx, http.MethodPost, "auth/reset", "", JSON(ResetRequest{Email: email}), nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*CurrentUserResponse, error) {
	var resp CurrentUserResponse
	if err := c.Request(ctx, http.MethodGet, "user/info", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UserInfo(ctx context.Context, token, userID string) (*UserResponse, error) {
	var resp UserResponse
	if err := c.Request(ctx, http.MethodGet, "user/info/"+url.PathEscape(userID), token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UserDetails(ctx context.Context, token, userID string) (*UserDetailsResponse, error) {
	var resp UserDetailsResponse
	if err := c.Request(ctx, http.MethodGet, "user/details/"+url.PathEscape(userID), token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) EditSelf(ctx context.Context, token string, req EditSelfRequest) (*UserResponse, error) {
	var body Body = JSON(req)
	if req.Avatar != nil {
		form, err := editSelfForm(req)
		if err != nil {
			return nil, err
		}
		body = Multipart(form)
	}

	var resp UserResponse
	if err := c.Request(ctx, http.MethodPost, "user/edit", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func editSelfForm(req EditSelfRequest) (MultipartForm, error) {
	form := MultipartForm{
		Fields: map[string]string{},
		Files:  []FormFile{{Field: "avatar", Name: "avatar.jpg", ContentType: "image/jpeg", Data: req.Avatar}},
	}
	if req.Username != nil {
		form.Fields["username"] = *req.Username
	}
	if req.DisplayName != nil {
		form.Fields["displayName"] = *req.DisplayName
	}
	if req.Bio != nil {
		form.Fields["bio"] = *req.Bio
	}
	if req.FavouriteTags != nil {
		tags, err := json.Marshal(req.FavouriteTags)
		if err != nil {
			return MultipartForm{}, err
		}
		form.Fields["favouriteTags"] = string(tags)
	}
	return form, nil
}

func (c *HTTPClient) EventInfo(ctx context.Context, token, eventID string) (*EventResponse, error) {
	var resp EventResponse
	if err := c.Request(ctx, http.MethodGet, "event/info/"+url.PathEscape(eventID), token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) EventMedia(ctx context.Context, token, eventID string) ([]MediaResponse, error) {
	var resp []MediaResponse
	if err := c.Request(ctx, http.MethodGet, "event/info/"+url.PathEscape(eventID)+"/media", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) RelevantEvents(ctx context.Context, token, userID string) (*RelevantEventsResponse, error) {
	var body Body
	if userID != "" {
		body = JSON(map[string]string{"userId": userID})
	}

	var resp RelevantEventsResponse
	if err := c.Request(ctx, http.MethodGet, "event/relevantEvents", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) FindEvents(ctx context.Context, token string, params FindEventsParams) ([]EventResponse, error) {
	var resp []EventResponse
	if err := c.Request(ctx, http.MethodGet, "event/find", token, JSON(params), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, token string, req CreateEventRequest) (*EventResponse, error) {
	var resp EventResponse
	if err := c.Request(ctx, http.MethodPost, "event/create", token, JSON(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) JoinEvent(ctx context.Context, token string, req JoinEventRequest) error {
	return c.Request(ctx, http.MethodPost, "event/join", token, JSON(req), nil)
}

func (c *HTTPClient) CloseEvent(ctx context.Context, token, eventID string) error {
	return c.Request(ctx, http.MethodPost, "event/close", token, JSON(CloseEventRequest{EventID: eventID}), nil)
}

func (c *HTTPClient) AllTags(ctx context.Context, token string) ([]TagResponse, error) {
	var resp []TagResponse
	if err := c.Request(ctx, http.MethodGet, "event/tags", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) AllMedia(ctx context.Context, token string) ([]MediaResponse, error) {
	var resp AllMediaResponse
	if err := c.Request(ctx, http.MethodGet, "info/all_media", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Media, nil
}

func (c *HTTPClient) Messages(ctx context.Context, token, eventID string) ([]MessageResponse, error) {
	var resp []MessageResponse
	if err := c.Request(ctx, http.MethodGet, "event/info/"+url.PathEscape(eventID)+"/messages", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, token string, req SendMessageRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.Request(ctx, http.MethodPost, "event/message", token, JSON(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
