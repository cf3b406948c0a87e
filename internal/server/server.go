package server

import (
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New は共通ミドルウェア込みのechoを作る。
// 各サービスはこれにRegisterRoutesでルートを足してStartする。
func New(feURL string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(appmw.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	//CORS（FE_URL指定時はそのオリジンのみ許可）
	cors := middleware.DefaultCORSConfig
	if feURL != "" {
		cors.AllowOrigins = []string{feURL}
	}
	e.Use(middleware.CORSWithConfig(cors))

	return e
}

func Start(e *echo.Echo, port string) error {
	addr := ":" + port
	if port != "" && port[0] == ':' {
		addr = port
	}
	return e.Start(addr)
}
