//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package brief

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	b := Default()
	require.Equal(t, DefaultTitle, b.Title)
	require.Empty(t, b.Source)
	require.Contains(t, b.Text, "high-frequency trading")
	require.Contains(t, b.Text, "1,000,000 trades per second")
	require.Contains(t, b.Text, "accuracy rate above 95%")
	require.Contains(t, b.Text, "under 2 minutes per year")
}

func TestFromFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payment_gateway.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Test the payment gateway.\n"), 0o644))

	b, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, "Test the payment gateway.", b.Text)
	require.Equal(t, "payment gateway", b.Title)
	require.Equal(t, path, b.Source)
}

func TestFromFile_Markdown(t *testing.T) {
	content := `# Checkout Service

Validate the checkout flow end to end.

## Constraints

- Payments settle within 2 seconds.
- Carts survive restarts.
`
	path := filepath.Join(t.TempDir(), "checkout.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, "Checkout Service", b.Title)
	require.Contains(t, b.Text, "Validate the checkout flow end to end.")
	require.Contains(t, b.Text, "Payments settle within 2 seconds.")
	require.NotContains(t, b.Text, "#")
}

func TestFromFile_MarkdownWithoutHeading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api-notes.md")
	require.NoError(t, os.WriteFile(path, []byte("Just some requirements."), 0o644))

	b, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, "api notes", b.Title)
}

// newTestPDF programmatically generates a small PDF so the fixture is
// guaranteed well-formed without checking in binary test data.
func newTestPDF(t *testing.T, text string) []byte {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(40, 10, text)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestFromFile_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.pdf")
	require.NoError(t, os.WriteFile(path, newTestPDF(t, "Throughput must reach one million trades"), 0o644))

	b, err := FromFile(path)
	require.NoError(t, err)
	require.Contains(t, b.Text, "Throughput must reach one million trades")
	require.Equal(t, "requirements", b.Title)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestFromFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t\n"), 0o644))

	_, err := FromFile(path)
	require.ErrorIs(t, err, ErrEmptyBrief)
}

func TestFromFile_MalformedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
}

func TestFromFile_MalformedDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
}

func TestTitleFromPath(t *testing.T) {
	require.Equal(t, "trade engine v2", titleFromPath("/tmp/specs/trade_engine-v2.txt"))
	require.Equal(t, "spec", titleFromPath("spec"))
}
