package remote

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID는 원격 저장소가 부여하는 불투명 식별자입니다.
// (MySQL은 BIGINT, Supabase는 uuid/bigint를 쓰므로 문자열로 통일)
type ID string

// Scan은 sql.Scanner 구현입니다.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ""
	case int64:
		*id = ID(strconv.FormatInt(v, 10))
	case []byte:
		*id = ID(string(v))
	case string:
		*id = ID(v)
	default:
		*id = ID(fmt.Sprint(v))
	}
	return nil
}

// UnmarshalJSON은 숫자/문자열 ID를 모두 받습니다.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("remote: invalid id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

// StringList는 순서가 있는 문자열 목록입니다.
// SQL에서는 JSON 텍스트 컬럼, JSON에서는 배열로 표현됩니다.
type StringList []string

// Scan은 JSON 배열 텍스트를 읽습니다. (배열이 아니면 쉼표 구분 텍스트로 간주)
func (l *StringList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("remote: cannot scan %T into StringList", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = StringList{}
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return fmt.Errorf("remote: invalid string list: %w", err)
		}
		*l = items
		return nil
	}

	items := StringList{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	*l = items
	return nil
}

// Value는 driver.Valuer 구현입니다.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
