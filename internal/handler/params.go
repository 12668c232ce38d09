package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/i18n"
	"gathr/backend/internal/model"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func isValidKind(kind string) bool {
	return kind == model.KindEvent || kind == model.KindComment
}

// viewerLocale resolves the locale a response should be rendered in:
// the "locale" query parameter if present, else the best match from
// Accept-Language, else the default.
func viewerLocale(c echo.Context) string {
	if locale := c.QueryParam("locale"); locale != "" {
		return locale
	}
	if locale := i18n.MatchAcceptLanguage(c.Request().Header.Get("Accept-Language")); locale != "" {
		return locale
	}
	return i18n.DefaultLocale
}
