package pptx

import (
	"strings"

	"github.com/beevik/etree"
)

// Slide 单张幻灯片
type Slide struct {
	doc *etree.Document
}

// Shapes 返回幻灯片上的所有形状（p:sp，含分组内的）
func (s *Slide) Shapes() []*Shape {
	els := s.doc.FindElements("//p:sp")
	shapes := make([]*Shape, 0, len(els))
	for _, el := range els {
		shapes = append(shapes, &Shape{el: el})
	}
	return shapes
}

// XML 返回幻灯片部件当前的序列化内容（测试用）
func (s *Slide) XML() (string, error) {
	return s.doc.WriteToString()
}

// Shape 幻灯片上的一个形状
type Shape struct {
	el *etree.Element
}

// Name 形状名（cNvPr 的 name 属性）
func (sh *Shape) Name() string {
	if pr := sh.el.FindElement("p:nvSpPr/p:cNvPr"); pr != nil {
		return pr.SelectAttrValue("name", "")
	}
	return ""
}

// SetName 重命名形状
func (sh *Shape) SetName(name string) {
	if pr := sh.el.FindElement("p:nvSpPr/p:cNvPr"); pr != nil {
		pr.CreateAttr("name", name)
	}
}

// Text 返回形状的可见文字。段落之间以及 a:br 处用换行拼接。
func (sh *Shape) Text() string {
	txBody := sh.el.FindElement("p:txBody")
	if txBody == nil {
		return ""
	}
	var paragraphs []string
	for _, p := range txBody.SelectElements("a:p") {
		var b strings.Builder
		for _, child := range p.ChildElements() {
			switch {
			case child.Space == "a" && child.Tag == "r":
				if t := child.SelectElement("a:t"); t != nil {
					b.WriteString(t.Text())
				}
			case child.Space == "a" && child.Tag == "br":
				b.WriteString("\n")
			}
		}
		paragraphs = append(paragraphs, b.String())
	}
	return strings.Join(paragraphs, "\n")
}

// SetText 用给定文字替换形状内容，每行一个段落。
// 保留 bodyPr/lstStyle，并把原第一段的段落属性与字符属性套到所有新段落上，
// 使重写后的文字沿用原有外观。
func (sh *Shape) SetText(text string) {
	txBody := sh.el.FindElement("p:txBody")
	if txBody == nil {
		return
	}

	paras := txBody.SelectElements("a:p")
	var pPr, rPr *etree.Element
	if len(paras) > 0 {
		if el := paras[0].SelectElement("a:pPr"); el != nil {
			pPr = el.Copy()
		}
		if run := paras[0].FindElement("a:r/a:rPr"); run != nil {
			rPr = run.Copy()
		}
	}
	for _, p := range paras {
		txBody.RemoveChild(p)
	}

	for _, line := range strings.Split(text, "\n") {
		p := txBody.CreateElement("a:p")
		if pPr != nil {
			p.AddChild(pPr.Copy())
		}
		r := p.CreateElement("a:r")
		if rPr != nil {
			r.AddChild(rPr.Copy())
		}
		t := r.CreateElement("a:t")
		t.SetText(line)
	}
}

// Remove 把形状从幻灯片上摘除
func (sh *Shape) Remove() {
	if p := sh.el.Parent(); p != nil {
		p.RemoveChild(sh.el)
	}
}

// 填充组内互斥的元素，替换填充时先移除
var fillTags = []string{"a:noFill", "a:solidFill", "a:gradFill", "a:blipFill", "a:pattFill", "a:grpFill"}

// SetFill 把形状填充替换为纯色（hex 为 RRGGBB）。
// 新的 solidFill 插在原填充位置上；原先没有填充时插在几何定义之后，
// 遵守 spPr 的子元素顺序。
func (sh *Shape) SetFill(hex string) {
	spPr := sh.el.FindElement("p:spPr")
	if spPr == nil {
		return
	}

	insertAt := -1
	for _, tag := range fillTags {
		if el := spPr.SelectElement(tag); el != nil {
			insertAt = el.Index()
			spPr.RemoveChild(el)
			break
		}
	}
	if insertAt < 0 {
		for _, tag := range []string{"a:xfrm", "a:prstGeom", "a:custGeom"} {
			if el := spPr.SelectElement(tag); el != nil && el.Index()+1 > insertAt {
				insertAt = el.Index() + 1
			}
		}
		if insertAt < 0 {
			insertAt = 0
		}
	}

	solid := etree.NewElement("a:solidFill")
	clr := solid.CreateElement("a:srgbClr")
	clr.CreateAttr("val", hex)
	spPr.InsertChildAt(insertAt, solid)
}
