package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "庆",
}

var commonRoles = []string{
	"仓管员", "管道工", "电工", "焊工", "钢筋工", "架子工", "木工", "杂工",
}

var digits = "0123456789"

// GenerateCardUIDFromChineseName 用姓名的拼音加随机数字生成一个演示用的卡号
func GenerateCardUIDFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	cardUID := "CARD_" + strings.ToUpper(strings.Join(pinyinArray, ""))

	for i := 0; i < 4; i++ {
		cardUID += string(digits[rand.Intn(len(digits))])
	}

	return cardUID
}

func GenerateRandomPerson() *domain.Person {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""
	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}

	return &domain.Person{
		FirstName: surname,
		LastName:  name,
		Role:      commonRoles[rand.Intn(len(commonRoles))],
		CardUID:   GenerateCardUIDFromChineseName(surname + name),
	}
}

// GenerateRandomScans 为某人生成某个本地日内的随机刷卡记录。
// day 是本地日的 UTC 起点，大约一半的人会有下班刷卡。
func GenerateRandomScans(person *domain.Person, day time.Time) []*domain.ScanEvent {
	// 上班刷卡在 06:00~10:59 之间
	firstScan := day.Add(time.Duration(6+rand.Intn(5)) * time.Hour).Add(time.Duration(rand.Intn(60)) * time.Minute)

	scans := []*domain.ScanEvent{
		{
			PersonID:  person.ID,
			CardUID:   person.CardUID,
			ScannedAt: firstScan,
		},
	}

	if rand.Intn(2) == 0 {
		// 下班刷卡在上班之后 6~10 小时
		lastScan := firstScan.Add(time.Duration(6+rand.Intn(5)) * time.Hour).Add(time.Duration(rand.Intn(60)) * time.Minute)
		scans = append(scans, &domain.ScanEvent{
			PersonID:  person.ID,
			CardUID:   person.CardUID,
			ScannedAt: lastScan,
		})
	}

	return scans
}

func GenerateRandomJobName() *domain.JobName {
	return &domain.JobName{
		Name: fmt.Sprintf("%s作业%02d", commonRoles[rand.Intn(len(commonRoles))], rand.Intn(100)),
	}
}
