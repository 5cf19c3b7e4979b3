package model

// AnalysisRequest 分析请求
type AnalysisRequest struct {
	URL string `json:"url"`
}

// ExtractedListing 从积分站页面中提取出的结构化信息
type ExtractedListing struct {
	ServiceName      string   `json:"service_name"`      // 推广的服务或商品名称
	Reward           string   `json:"reward"`            // 奖励（积分/比例，自由文本）
	Conditions       []string `json:"conditions"`        // 获得奖励的条件，保持模型输出顺序
	DenialConditions []string `json:"denial_conditions"` // 导致奖励无效的条件
}

// AffiliateCandidate 联盟营销 (ASP) 候选条目
type AffiliateCandidate struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// AnalysisResult 对外返回的分析结果
type AnalysisResult struct {
	ExtractedListing
	AffiliateInfo []AffiliateCandidate `json:"affiliate_info"`
}

// ErrorResponse 失败时返回的 JSON 结构
type ErrorResponse struct {
	Error string `json:"error"`
}
