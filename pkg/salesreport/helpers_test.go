package salesreport

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a fresh single-sheet workbook and returns its path.
func writeWorkbook(t *testing.T, name string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cellStyle(t *testing.T, f *excelize.File, cell string) *excelize.Style {
	t.Helper()

	id, err := f.GetCellStyle("Sheet1", cell)
	require.NoError(t, err)
	st, err := f.GetStyle(id)
	require.NoError(t, err)
	return st
}

func assertColor(t *testing.T, want, got string) {
	t.Helper()
	assert.True(t, strings.HasSuffix(strings.ToUpper(got), want), "color %q, want %q", got, want)
}

// replaceZipEntry rewrites one part of the xlsx package at path.
func replaceZipEntry(t *testing.T, path, name string, content []byte) {
	t.Helper()

	src, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer src.Close()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	found := false
	for _, file := range src.File {
		dst, err := w.Create(file.Name)
		require.NoError(t, err)
		if file.Name == name {
			found = true
			_, err = dst.Write(content)
			require.NoError(t, err)
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		_, err = io.Copy(dst, rc)
		rc.Close()
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.True(t, found, "no %s in %s", name, path)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}
