package mirror

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/mdkeeper/internal/models"
)

// FrontMatter поля YAML заголовка выгруженного документа
type FrontMatter struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title,omitempty"`
}

// Render собирает markdown файл: front matter и текст документа
func Render(doc *models.Entity) ([]byte, error) {
	head, err := yaml.Marshal(FrontMatter{ID: doc.ID, Title: doc.Name})
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(head) + len(doc.Content) + 8)
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n")
	buf.WriteString(doc.Content)
	return buf.Bytes(), nil
}

// Parse отделяет front matter от текста. Файл без заголовка возвращает
// пустой FrontMatter и все содержимое как текст.
func Parse(content []byte) (FrontMatter, string) {
	var fm FrontMatter

	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return fm, string(content)
	}

	rest := content[4:]
	var block, body []byte
	if bytes.HasPrefix(rest, []byte("---\n")) {
		body = rest[4:]
	} else {
		end := bytes.Index(rest, []byte("\n---\n"))
		if end < 0 {
			return fm, string(content)
		}
		block = rest[:end+1]
		body = rest[end+5:]
	}

	if err := yaml.Unmarshal(block, &fm); err != nil {
		return FrontMatter{}, string(content)
	}
	return fm, string(body)
}
