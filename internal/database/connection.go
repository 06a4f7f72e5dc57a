package database

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/mysql/v2" // (MySQL 세션 스토어)
	_ "github.com/go-sql-driver/mysql"   // 드라이버 임포트
	"github.com/jmoiron/sqlx"
)

// DBI는 MySQL 접속 정보입니다.
type DBI struct {
	User     string
	Password string
	Endpoint string
	Port     int
	Database string
}

// DSN은 go-sql-driver/mysql 접속 문자열입니다.
// (parseTime=true: DATETIME → time.Time, utf8mb4: 한글/이모지 방명록)
func (i DBI) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		i.User, i.Password, i.Endpoint, i.Port, i.Database)
}

// CreateConnection은 sqlx 커넥션 풀을 열고 연결을 확인합니다.
func CreateConnection(i DBI) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", i.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// NewSessionStorage는 세션(플래시 메시지)을 table에 저장하는 fiber.Storage를 만듭니다.
func NewSessionStorage(db *sqlx.DB, table string) fiber.Storage {
	return mysql.New(mysql.Config{
		Db:    db.DB, // (*sqlx.DB에서 표준 *sql.DB 추출)
		Table: table,
	})
}
