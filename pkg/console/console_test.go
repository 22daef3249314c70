package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainConsole_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlainConsole(&buf)

	c.LogInfo("period %s", "03/01-03/14")
	c.LogWarning("budgets unavailable")
	c.LogError("sns failed: %v", "boom")
	c.LogSuccess("delivered")

	out := buf.String()
	assert.Contains(t, out, "period 03/01-03/14")
	assert.Contains(t, out, "budgets unavailable")
	assert.Contains(t, out, "sns failed: boom")
	assert.Contains(t, out, "delivered")
}

func TestTable_Render(t *testing.T) {
	c := NewPlainConsole(&bytes.Buffer{})
	table := c.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Cost")
	table.AddRow("Amazon EC2", "100.00 USD")
	table.AddRow("AWS Lambda", 23.45)

	rendered := table.Render()
	assert.Contains(t, rendered, "Service")
	assert.Contains(t, rendered, "Amazon EC2")
	assert.Contains(t, rendered, "23.45")
}
