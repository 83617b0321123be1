package schedule

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhogstrom/ess-arbetsschema/internal/pptx"
)

func mapShape(id int, name, text string) string {
	var paras strings.Builder
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(&paras, `<a:p><a:r><a:rPr lang="sv-SE"/><a:t>%s</a:t></a:r></a:p>`, line)
	}
	return fmt.Sprintf(`<p:sp>
<p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
<p:spPr><a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
<a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill></p:spPr>
<p:txBody><a:bodyPr/><a:lstStyle/>%s</p:txBody>
</p:sp>`, id, name, paras.String())
}

func writeMapTemplate(t *testing.T, path string, shapes ...string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("创建地图: %v", err)
	}
	w := zip.NewWriter(f)
	fw, err := w.Create("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("写入幻灯片: %v", err)
	}
	slideXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>` + strings.Join(shapes, "\n") + `</p:spTree></p:cSld>
</p:sld>`
	if _, err := fw.Write([]byte(slideXML)); err != nil {
		t.Fatalf("写入幻灯片: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("关闭文件: %v", err)
	}
}

func TestWriteHighlightedMap(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mapPath := filepath.Join(dir, "varvskarta.pptx")
	outPath := filepath.Join(dir, "Förarschema ESS 2026-10-03.pptx")
	writeMapTemplate(t, mapPath,
		mapShape(2, "s1", "B-12\n42 Svensson\n7.0x3.2"),
		mapShape(3, "s2", "A-1\n7 Lind\n9.5x4.0"),
		mapShape(4, "Anteckning 1", "arbetsanteckning"),
		mapShape(5, "Anteckning 2", "arbetsanteckning"),
	)

	report := &Report{
		Date: "2026-10-03",
		Boats: []*Row{
			{PassTime: "08:00", MemberID: 42, Name: "Anna Svensson"},
			{PassTime: "09:00", MemberID: 999, Name: "Saknas På Kartan"},
		},
	}

	logger := log.New(io.Discard, "", 0)
	if err := report.WriteHighlightedMap(mapPath, outPath, logger); err != nil {
		t.Fatalf("WriteHighlightedMap: %v", err)
	}

	doc, err := pptx.Open(outPath)
	if err != nil {
		t.Fatalf("打开地图副本: %v", err)
	}
	slide, err := doc.Slide(1)
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}

	// 注记形状摘掉，场地形状保留
	shapes := slide.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("Shapes = %d, want 2", len(shapes))
	}

	xml, err := slide.XML()
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	// 当天要吊的船标成黄色，其它场地不动
	if strings.Count(xml, `val="FFFF1A"`) != 1 {
		t.Fatalf("标色数量错误:\n%s", xml)
	}
	if strings.Count(xml, `val="FFFFFF"`) != 1 {
		t.Fatalf("未排班的场地被改色:\n%s", xml)
	}
	// 文字一概不动
	if got := shapes[0].Text(); got != "B-12\n42 Svensson\n7.0x3.2" {
		t.Fatalf("场地文字被改写: %q", got)
	}

	// 模板本身保持原样
	tmpl, err := pptx.Open(mapPath)
	if err != nil {
		t.Fatalf("重新打开模板: %v", err)
	}
	tmplSlide, _ := tmpl.Slide(1)
	if got := len(tmplSlide.Shapes()); got != 4 {
		t.Fatalf("模板被改动: %d 个形状", got)
	}
}
