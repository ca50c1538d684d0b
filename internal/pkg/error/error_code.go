package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體 / 缺少必填欄位
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的路徑參數（ID 格式錯誤）
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭
	DUPLICATE_EMAIL     = 40006 // 400 - Email 已存在
	INVALID_DECISION    = 40007 // 400 - 審核結果只能是 approved / rejected
	WRONG_PASSWORD      = 40008 // 400 - 目前密碼錯誤

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED        = 40100 // 401 - 未授權
	INVALID_SESSION     = 40101 // 401 - token 失效或已登出
	INVALID_CREDENTIALS = 40102 // 401 - 帳號或密碼錯誤
	FORBIDDEN           = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 登入嘗試過於頻繁

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 依賴服務無法使用
)
