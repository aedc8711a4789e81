// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやサービス層から利用する。
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int)
	RecordHTTPLatency(route string, duration time.Duration)
	RecordUserRegistered()
	RecordLoginSuccess()
	RecordLoginFailure()
	RecordCampaignCreated()
	RecordCampaignDeleted()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	usersRegistered  prometheus.Counter
	loginSuccess     prometheus.Counter
	loginFailure     prometheus.Counter
	campaignsCreated prometheus.Counter
	campaignsDeleted prometheus.Counter
}

var _ MetricsCollector = (*Collector)(nil)

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campman_http_requests_total",
			Help: "HTTPリクエストの合計数（メソッド・ルート・ステータスコード別）",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campman_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campman_users_registered_total",
			Help: "登録されたユーザーの合計数",
		}),
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campman_login_success_total",
			Help: "ログイン成功の合計数",
		}),
		loginFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campman_login_failure_total",
			Help: "ログイン失敗の合計数",
		}),
		campaignsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campman_campaigns_created_total",
			Help: "作成されたキャンペーンの合計数",
		}),
		campaignsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campman_campaigns_deleted_total",
			Help: "削除されたキャンペーンの合計数",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.usersRegistered,
		c.loginSuccess,
		c.loginFailure,
		c.campaignsCreated,
		c.campaignsDeleted,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエストの完了を記録する。
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
}

// RecordHTTPLatency はHTTPリクエストの処理時間を記録する。
func (c *Collector) RecordHTTPLatency(route string, duration time.Duration) {
	c.httpLatency.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordUserRegistered はユーザー登録を記録する。
func (c *Collector) RecordUserRegistered() {
	c.usersRegistered.Inc()
}

// RecordLoginSuccess はログイン成功を記録する。
func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFailure.Inc()
}

// RecordCampaignCreated はキャンペーン作成を記録する。
func (c *Collector) RecordCampaignCreated() {
	c.campaignsCreated.Inc()
}

// RecordCampaignDeleted はキャンペーン削除を記録する。
func (c *Collector) RecordCampaignDeleted() {
	c.campaignsDeleted.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
