package command

import (
	"fmt"
	"strings"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("⚙️️ **%s**\n\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ %s\n", message)
}

func (f *ResponseFormatter) Failure(message string) string {
	return fmt.Sprintf("❌ %s\n", message)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Section(emoji, title, content string) string {
	return fmt.Sprintf("%s **%s**\n%s\n", emoji, title, content)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
