package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/campman/internal/metrics"
	"github.com/hitoshi/campman/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenVerifier     middleware.TokenVerifier
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// メトリクス
	MetricsCollector *metrics.Collector
	MetricsGatherer  prometheus.Gatherer

	// サービス
	AuthService     AuthServiceInterface
	CampaignService CampaignServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → Logging → Metrics → CORS → (認証ルートのみ) Auth → RateLimit(General)
//
// /healthと/metricsは認証・レート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.MetricsCollector != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsCollector))
	}
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	// nilの*Collectorを非nilインターフェースとして渡さないようにする
	var authMetrics AuthMetrics
	var campaignMetrics CampaignMetrics
	if deps.MetricsCollector != nil {
		authMetrics = deps.MetricsCollector
		campaignMetrics = deps.MetricsCollector
	}

	authHandler := NewAuthHandler(deps.AuthService, authMetrics)
	campaignHandler := NewCampaignHandler(deps.CampaignService, campaignMetrics)

	// --- 認証不要のルート ---

	// 稼働確認
	r.Get("/health", Health)

	// Prometheusスクレイプ
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// 登録・ログイン（IP単位のレート制限を適用）
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.LoginMiddleware())
			}
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// --- 認証が必要なユーザー管理ルート ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.GeneralMiddleware())
			}

			r.Get("/me", authHandler.Me)
			r.Put("/profile", authHandler.UpdateProfile)
			r.Put("/password", authHandler.ChangePassword)
		})
	})

	// --- 認証が必要なキャンペーン管理ルート ---
	r.Route("/api/campaigns", func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Get("/", campaignHandler.List)
		r.Post("/", campaignHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", campaignHandler.Update)
			r.Delete("/", campaignHandler.Delete)
		})
	})

	return r
}
