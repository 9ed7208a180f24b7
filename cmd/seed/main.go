package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/report"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/repository"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var day string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机人员, 2: 插入随机工种, 3: 为所有人员插入某日的随机刷卡记录)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.StringVar(&day, "day", "", "插入刷卡记录的本地日 (YYYY-MM-DD，默认今天)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	offset := time.Duration(cfg.Report.UTCOffsetHours) * time.Hour

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的人员数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				person := utils.GenerateRandomPerson()
				if err := repo.CreatePerson(person); err != nil {
					slog.Error("无法插入人员", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入人员成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的工种数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				jobName := utils.GenerateRandomJobName()
				if err := repo.CreateJobName(jobName); err != nil {
					slog.Error("无法插入工种", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入工种成功", slog.Int("count", n-cnt))
		}
	case 3:
		if day == "" {
			day = report.LocalDayOf(time.Now(), offset)
		}

		dayStart, _, err := report.UTCRangeForLocalDay(day, offset)
		if err != nil {
			slog.Error("指定的日期非法", slog.String("day", day))
			return
		}

		persons, err := repo.GetAllPersons()
		if err != nil {
			slog.Error("无法获取人员列表", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, person := range persons {
			for _, scan := range utils.GenerateRandomScans(person, dayStart) {
				if err := repo.InsertScan(scan); err != nil {
					slog.Error("无法插入刷卡记录", slog.String("error", err.Error()))
					continue
				}

				cnt++
			}
		}

		slog.Info("插入刷卡记录成功", slog.String("day", day), slog.Int("count", cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
