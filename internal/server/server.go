package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"launchboard/internal/api"
	"launchboard/internal/config"
	"launchboard/internal/dataset"
	"launchboard/internal/metrics"
)

//go:embed all:static
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	ds     *dataset.Dataset
	api    *api.Handler
}

// NewServer 创建服务器
// 数据集在 main 中加载完成后注入，服务器启动后不再有任何磁盘 I/O
func NewServer(cfg *config.AppConfig, ds *dataset.Dataset) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Init()

	s := &Server{
		router: gin.Default(),
		ds:     ds,
		api:    api.NewHandler(ds),
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// Prometheus 指标
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 静态资源
	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 生产模式：使用embed的静态资源
		sub, _ := fs.Sub(staticFiles, "static")

		index := func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		}

		// 首页
		s.router.GET("/", index)

		// 单页应用 fallback
		s.router.NoRoute(index)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Dataset 获取数据集（用于测试）
func (s *Server) Dataset() *dataset.Dataset {
	return s.ds
}

// Router 获取路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}
