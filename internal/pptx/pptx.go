// Package pptx 提供对 PowerPoint 文件最小限度的就地编辑能力：
// 遍历幻灯片上的形状，读写形状名/文字，替换填充色。
// 几何、位置与形状数量一概不动，未触碰的部分原样回写。
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/beevik/etree"
)

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Document 已整体载入内存的 pptx 文档。
// 所有修改都先缓存在内存里，Save 时一次性写出。
type Document struct {
	names  []string                   // 条目顺序，保存时按原序回写
	parts  map[string][]byte          // 原始 zip 条目
	slides map[string]*etree.Document // 已解析的幻灯片部件
}

// Open 读取 pptx 文件并把全部条目载入内存
func Open(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("打开地图文件 %s 失败: %w", path, err)
	}
	defer r.Close()

	d := &Document{
		parts:  make(map[string][]byte),
		slides: make(map[string]*etree.Document),
	}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("读取条目 %s 失败: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("读取条目 %s 失败: %w", f.Name, err)
		}
		d.names = append(d.names, f.Name)
		d.parts[f.Name] = data
	}
	return d, nil
}

// SlideCount 幻灯片数量
func (d *Document) SlideCount() int {
	count := 0
	for _, name := range d.names {
		if slidePartPattern.MatchString(name) {
			count++
		}
	}
	return count
}

// Slide 返回第 n 张幻灯片（从 1 开始，与 pptx 部件命名一致）
func (d *Document) Slide(n int) (*Slide, error) {
	name := fmt.Sprintf("ppt/slides/slide%d.xml", n)
	if doc, ok := d.slides[name]; ok {
		return &Slide{doc: doc}, nil
	}
	data, ok := d.parts[name]
	if !ok {
		return nil, fmt.Errorf("幻灯片 %d 不存在", n)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("解析幻灯片 %d 失败: %w", n, err)
	}
	d.slides[name] = doc
	return &Slide{doc: doc}, nil
}

// Save 把文档一次性写出到 outPath。
// 只有整个运行成功走到这里才会落盘，之前的产物不会被改成半成品。
func (d *Document) Save(outPath string) error {
	for name, doc := range d.slides {
		data, err := doc.WriteToBytes()
		if err != nil {
			return fmt.Errorf("序列化 %s 失败: %w", name, err)
		}
		d.parts[name] = data
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range d.names {
		fw, err := w.Create(name)
		if err != nil {
			return fmt.Errorf("写入条目 %s 失败: %w", name, err)
		}
		if _, err := fw.Write(d.parts[name]); err != nil {
			return fmt.Errorf("写入条目 %s 失败: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("关闭输出文件失败: %w", err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("保存地图文件 %s 失败: %w", outPath, err)
	}
	return nil
}
