package parser

import (
	"testing"

	"fjacquet/mt940/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestNewBaseParser(t *testing.T) {
	t.Run("with provided logger", func(t *testing.T) {
		mockLog := logging.NewMockLogger()
		base := NewBaseParser(mockLog)
		assert.Same(t, mockLog, base.GetLogger())
	})

	t.Run("with nil logger uses default", func(t *testing.T) {
		base := NewBaseParser(nil)
		_, ok := base.GetLogger().(*logging.LogrusAdapter)
		assert.True(t, ok)
	})
}

func TestBaseParserSetLogger(t *testing.T) {
	t.Run("sets new logger", func(t *testing.T) {
		base := NewBaseParser(nil)
		mockLog := logging.NewMockLogger()
		base.SetLogger(mockLog)
		assert.Same(t, mockLog, base.GetLogger())
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		mockLog := logging.NewMockLogger()
		base := NewBaseParser(mockLog)
		base.SetLogger(nil)
		assert.Same(t, mockLog, base.GetLogger())
	})
}

func TestBaseParserSatisfiesLoggerConfigurable(t *testing.T) {
	var _ LoggerConfigurable = &BaseParser{}
}
