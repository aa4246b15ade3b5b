package usecase

// 操作者。監査ログのuser_id/ip_address/user_agentに残す。
type Actor struct {
	UserID    int64
	IPAddress string
	UserAgent string
}
