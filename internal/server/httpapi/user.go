package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/server/users"
	"github.com/labstack/echo/v4"
)

const maxAvatarSize = 5 << 20

func (s *Server) currentUser(c echo.Context) error {
	u, err := s.users.Get(c.Request().Context(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, currentUserResponse(c, u))
}

func (s *Server) userInfo(c echo.Context) error {
	u, err := s.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse(c, u))
}

func (s *Server) userDetails(c echo.Context) error {
	ctx := c.Request().Context()
	u, err := s.users.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	relevant, err := s.events.Relevant(ctx, u.ID, u.CurrentEventID)
	if err != nil {
		return err
	}
	numEvents := len(relevant.Hosted) + len(relevant.Interested) + len(relevant.Past)
	if relevant.Current != nil {
		numEvents++
	}

	return c.JSON(http.StatusOK, client.UserDetailsResponse{
		NumFollowers: u.Followers,
		NumFollowing: u.Following,
		NumEvents:    numEvents,
	})
}

func (s *Server) avatar(c echo.Context) error {
	u, err := s.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if len(u.Avatar) == 0 {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/jpeg", u.Avatar)
}

// editSelf accepts the changes as JSON or, when an avatar is uploaded, as
// multipart/form-data with favouriteTags sent as JSON text.
func (s *Server) editSelf(c echo.Context) error {
	var (
		patch users.Patch
		err   error
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		patch, err = editPatchFromForm(c)
	} else {
		var req client.EditSelfRequest
		if err = c.Bind(&req); err == nil {
			patch = users.Patch{
				UserName:      req.Username,
				DisplayName:   req.DisplayName,
				Bio:           req.Bio,
				FavouriteTags: req.FavouriteTags,
			}
		}
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := s.users.Edit(c.Request().Context(), userID(c), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse(c, u))
}

func editPatchFromForm(c echo.Context) (users.Patch, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return users.Patch{}, err
	}

	var patch users.Patch
	field := func(name string) *string {
		if v, ok := form.Value[name]; ok && len(v) > 0 {
			return &v[0]
		}
		return nil
	}
	patch.UserName = field("username")
	patch.DisplayName = field("displayName")
	patch.Bio = field("bio")

	if tags := field("favouriteTags"); tags != nil {
		if err := json.Unmarshal([]byte(*tags), &patch.FavouriteTags); err != nil {
			return users.Patch{}, errors.New("favouriteTags must be a JSON array")
		}
		if patch.FavouriteTags == nil {
			patch.FavouriteTags = []string{}
		}
	}

	if files := form.File["avatar"]; len(files) > 0 {
		if files[0].Size > maxAvatarSize {
			return users.Patch{}, errors.New("avatar too large")
		}
		f, err := files[0].Open()
		if err != nil {
			return users.Patch{}, err
		}
		defer f.Close()

		if patch.Avatar, err = io.ReadAll(f); err != nil {
			return users.Patch{}, err
		}
	}
	return patch, nil
}
