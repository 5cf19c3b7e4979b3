package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/errs"
	dm "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/model"
)

const extractionPrompt = `You are an expert at extracting structured data from point site descriptions.
Analyze the following markdown content and extract the data into a JSON object.

Required JSON structure:
{
  "service_name": "The name of the service or product being promoted",
  "reward": "The point reward or percentage",
  "conditions": ["List of strings describing requirements"],
  "denial_conditions": ["List of strings describing what invalidates the reward"]
}

Markdown Content:
%s
`

// StructuredExtractor 调用 LLM 将页面文本解析为 ExtractedListing
type StructuredExtractor struct {
	chatModel model.BaseChatModel
}

// NewStructuredExtractor 创建 StructuredExtractor，chatModel 需配置为 JSON 输出
func NewStructuredExtractor(cm model.BaseChatModel) *StructuredExtractor {
	return &StructuredExtractor{chatModel: cm}
}

// Extract 单次调用模型，不截断输入
func (e *StructuredExtractor) Extract(ctx context.Context, text string) (*dm.ExtractedListing, error) {
	messages := []*schema.Message{
		{Role: schema.User, Content: buildExtractionPrompt(text)},
	}

	resp, err := e.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, errs.Wrap(errs.Extraction, "Gemini failed", err)
	}

	var content string
	if resp != nil {
		content = resp.Content
	}
	cleanContent := stripCodeFence(content)
	if cleanContent == "" {
		return nil, errs.New(errs.Extraction, "Failed to analyze content with Gemini")
	}

	return parseListing(cleanContent)
}

func buildExtractionPrompt(text string) string {
	return fmt.Sprintf(extractionPrompt, text)
}

// stripCodeFence 去掉首尾任意层数的 ``` 围栏以及语言标记
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	for strings.HasPrefix(s, "```") {
		s = strings.TrimLeftFunc(s[3:], isFenceTag)
		s = strings.TrimSpace(s)
	}
	for strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// 对象或数组不会以这些字符开头，所以可以安全去掉
func isFenceTag(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '+'
}

// rawListing 用指针区分字段缺失和零值
type rawListing struct {
	ServiceName      *string   `json:"service_name"`
	Reward           *string   `json:"reward"`
	Conditions       *[]string `json:"conditions"`
	DenialConditions *[]string `json:"denial_conditions"`
}

func parseListing(content string) (*dm.ExtractedListing, error) {
	var raw rawListing
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, errs.Wrap(errs.Extraction, fmt.Sprintf("Invalid Gemini response: field %q has wrong type", typeErr.Field), err)
		}
		return nil, errs.Wrap(errs.Extraction, "Failed to parse Gemini response", err)
	}

	switch {
	case raw.ServiceName == nil:
		return nil, missingField("service_name")
	case raw.Reward == nil:
		return nil, missingField("reward")
	case raw.Conditions == nil:
		return nil, missingField("conditions")
	case raw.DenialConditions == nil:
		return nil, missingField("denial_conditions")
	}

	serviceName := strings.TrimSpace(*raw.ServiceName)
	if serviceName == "" {
		return nil, errs.New(errs.Extraction, `Invalid Gemini response: field "service_name" is empty`)
	}

	return &dm.ExtractedListing{
		ServiceName:      serviceName,
		Reward:           *raw.Reward,
		Conditions:       *raw.Conditions,
		DenialConditions: *raw.DenialConditions,
	}, nil
}

func missingField(name string) error {
	return errs.New(errs.Extraction, fmt.Sprintf("Invalid Gemini response: field %q is missing", name))
}
