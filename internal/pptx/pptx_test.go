package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
</Types>`

// shapeXML 构造一个带名字、几何与纯色填充的最小形状，每行文字一个段落
func shapeXML(id int, name, text string) string {
	var paras strings.Builder
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(&paras, `<a:p><a:r><a:rPr lang="sv-SE" sz="900"/><a:t>%s</a:t></a:r></a:p>`, line)
	}
	return fmt.Sprintf(`<p:sp>
<p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="914400" cy="914400"/></a:xfrm>
<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
<a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill></p:spPr>
<p:txBody><a:bodyPr/><a:lstStyle/>%s</p:txBody>
</p:sp>`, id, name, paras.String())
}

func slideXML(shapes ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>` + strings.Join(shapes, "\n") + `</p:spTree></p:cSld>
</p:sld>`
}

// writePptx 把给定幻灯片部件打包成测试用 pptx 文件
func writePptx(t *testing.T, path string, slides ...string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("创建测试文件: %v", err)
	}
	w := zip.NewWriter(f)
	parts := map[string]string{"[Content_Types].xml": contentTypesXML}
	for i, s := range slides {
		parts[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = s
	}
	for name, data := range parts {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("写入条目 %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(data)); err != nil {
			t.Fatalf("写入条目 %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("关闭文件: %v", err)
	}
}

func TestOpenAndSlideCount(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.pptx")
	writePptx(t, path, slideXML(shapeXML(2, "Spot", "B-12")), slideXML())

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := doc.SlideCount(); got != 2 {
		t.Fatalf("SlideCount = %d, want 2", got)
	}
	if _, err := doc.Slide(3); err == nil {
		t.Fatal("不存在的幻灯片应当报错")
	}
}

func TestShapeNameAndText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.pptx")
	writePptx(t, path, slideXML(
		shapeXML(2, "Spot 1", "B-12\n42 Svensson"),
		shapeXML(3, "Other", "Förklaring"),
	))

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	slide, err := doc.Slide(1)
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}

	shapes := slide.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("Shapes = %d, want 2", len(shapes))
	}
	if got := shapes[0].Name(); got != "Spot 1" {
		t.Fatalf("Name = %q", got)
	}
	if got := shapes[0].Text(); got != "B-12\n42 Svensson" {
		t.Fatalf("Text = %q", got)
	}

	shapes[0].SetName("Spot: B-12")
	if got := shapes[0].Name(); got != "Spot: B-12" {
		t.Fatalf("SetName 后 Name = %q", got)
	}
}

func TestSetTextKeepsRunProperties(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.pptx")
	writePptx(t, path, slideXML(shapeXML(2, "Spot", "B-12")))

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	slide, _ := doc.Slide(1)
	shape := slide.Shapes()[0]

	shape.SetText("B-12\n42 Svensson\n6.0x2.2")
	if got := shape.Text(); got != "B-12\n42 Svensson\n6.0x2.2" {
		t.Fatalf("Text = %q", got)
	}

	xml, err := slide.XML()
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	// 原第一段的字符属性要套到所有新段落上
	if strings.Count(xml, `sz="900"`) != 3 {
		t.Fatalf("字符属性没有沿用到每个段落:\n%s", xml)
	}
	if !strings.Contains(xml, "<a:bodyPr/>") {
		t.Fatalf("bodyPr 丢失:\n%s", xml)
	}
}

func TestSetFillReplacesInPlace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.pptx")
	writePptx(t, path, slideXML(shapeXML(2, "Spot", "B-12")))

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	slide, _ := doc.Slide(1)
	shape := slide.Shapes()[0]

	shape.SetFill("D6F5D6")
	xml, err := slide.XML()
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	if !strings.Contains(xml, `val="D6F5D6"`) {
		t.Fatalf("填充色未写入:\n%s", xml)
	}
	if strings.Count(xml, "<a:solidFill>") != 1 {
		t.Fatalf("旧填充未移除:\n%s", xml)
	}
	// 填充必须在几何定义之后
	if strings.Index(xml, "a:prstGeom") > strings.Index(xml, `val="D6F5D6"`) {
		t.Fatalf("填充插入位置违反 spPr 子元素顺序:\n%s", xml)
	}
}

func TestShapeRemove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.pptx")
	writePptx(t, path, slideXML(
		shapeXML(2, "Spot", "B-12"),
		shapeXML(3, "Anteckning 1", "arbetsanteckning"),
	))

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	slide, _ := doc.Slide(1)

	for _, sh := range slide.Shapes() {
		if sh.Name() == "Anteckning 1" {
			sh.Remove()
		}
	}

	shapes := slide.Shapes()
	if len(shapes) != 1 || shapes[0].Name() != "Spot" {
		t.Fatalf("摘除后形状 = %d 个", len(shapes))
	}
	xml, err := slide.XML()
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	if strings.Contains(xml, "Anteckning") {
		t.Fatalf("形状未摘干净:\n%s", xml)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.pptx")
	out := filepath.Join(dir, "out.pptx")
	writePptx(t, in, slideXML(shapeXML(2, "Spot", "B-12")))

	doc, err := Open(in)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	slide, _ := doc.Slide(1)
	slide.Shapes()[0].SetText("B-12\n42 Svensson")
	if err := doc.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(out)
	if err != nil {
		t.Fatalf("重新打开: %v", err)
	}
	slide2, err := reopened.Slide(1)
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}
	if got := slide2.Shapes()[0].Text(); got != "B-12\n42 Svensson" {
		t.Fatalf("保存后 Text = %q", got)
	}
	// 未解析改动的条目原样回写
	if _, ok := reopened.parts["[Content_Types].xml"]; !ok {
		t.Fatal("[Content_Types].xml 丢失")
	}
}
