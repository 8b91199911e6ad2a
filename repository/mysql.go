package repository

import (
	"database/sql"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"jade-game/logger"
)

// DB 对局归档库。未配置 MYSQL_DSN 时保持 nil，归档静默跳过
var DB *sql.DB

const createResultTable = `CREATE TABLE IF NOT EXISTS duel_results (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	room_id VARCHAR(32) NOT NULL,
	winner_seat INT NOT NULL,
	winner_name VARCHAR(64) NOT NULL,
	score_a INT NOT NULL,
	score_b INT NOT NULL,
	seals_a INT NOT NULL,
	seals_b INT NOT NULL,
	ended_at DATETIME NOT NULL
)`

func InitMySQL() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		logger.L.Info("未配置 MYSQL_DSN，跳过对局归档库")
		return
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		logger.L.Errorf("❌ MySQL 打开失败: %v", err)
		return
	}
	if err := db.Ping(); err != nil {
		logger.L.Errorf("❌ MySQL 连接失败: %v", err)
		return
	}
	if _, err := db.Exec(createResultTable); err != nil {
		logger.L.Errorf("❌ 建表失败: %v", err)
		return
	}
	DB = db
	logger.L.Info("✅ MySQL 连接成功")
}
