package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var views embed.FS

//go:embed public
var public embed.FS

// kst는 날짜 표시에 쓰는 한국 표준시입니다.
var kst = time.FixedZone("KST", 9*60*60)

// NewEngine은 내장(embed) 뷰를 사용하는 HTML 템플릿 엔진을 만듭니다.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("koDate", KoDate)
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("dict", Dict)
	engine.AddFunc("safeURL", SafeURL)
	return engine
}

// Public은 정적 파일(CSS, JS) 파일시스템입니다.
func Public() http.FileSystem {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Dict는 템플릿에서 partial에 넘길 맵을 만듭니다. ("키", 값, "키", 값 ...)
func Dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

// SafeURL은 설정에서 온 링크(tel: 등)를 그대로 href에 쓰도록 표시합니다.
// (html/template은 http, https, mailto 외의 스킴을 #ZgotmplZ로 바꿈)
func SafeURL(s string) template.URL {
	return template.URL(s)
}

// KoDate는 "2025년 3월 1일" 형식으로 날짜를 씁니다.
func KoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kst).Format("2006년 1월 2일")
}
