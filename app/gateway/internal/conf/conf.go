package conf

type Bootstrap struct {
	Server   *Server
	Analyzer *Analyzer
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Analyzer 分析引擎配置，字段与 pkg/config.Config 对应
type Analyzer struct {
	Fetch  *Fetch  `json:"fetch"`
	Llm    *LLM    `json:"llm"`
	Search *Search `json:"search"`
	Mock   *Mock   `json:"mock"`
	Log    *Log    `json:"log"`
}

type Fetch struct {
	Provider  string     `json:"provider"`
	Firecrawl *Firecrawl `json:"firecrawl"`
	Timeout   int32      `json:"timeout"`
}

type Firecrawl struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

type LLM struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Model   string `json:"model"`
}

type Search struct {
	Provider string   `json:"provider"`
	Locale   string   `json:"locale"`
	Country  string   `json:"country"`
	Serper   *Serper  `json:"serper"`
	Tavily   *Tavily  `json:"tavily"`
	Searxng  *SearXNG `json:"searxng"`
}

type Serper struct {
	ApiKey string `json:"api_key"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Mock struct {
	DelayMs int32 `json:"delay_ms"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
