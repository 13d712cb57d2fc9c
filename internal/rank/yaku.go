package rank

// CountedYakuman is the fallback label for a hand that reached the
// yakuman tier by cumulative han count rather than a named pattern.
const CountedYakuman = "헤아림역만"

// yakuNames maps the numeric hand-type code carried in a fan entry to its
// display name. Built once; read-only.
var yakuNames = map[uint32]string{
	1:  "멘젠쯔모",
	2:  "리치",
	3:  "창깡",
	4:  "영상개화",
	5:  "해저로월",
	6:  "하저로어",
	7:  "역패: 백",
	8:  "역패: 발",
	9:  "역패: 중",
	10: "자풍패",
	11: "장풍패",
	12: "탕야오",
	13: "이페코",
	14: "핑후",
	15: "찬타",
	16: "일기통관",
	17: "삼색동순",
	18: "더블리치",
	19: "삼색동각",
	20: "산깡쯔",
	21: "또이또이",
	22: "산안커",
	23: "소삼원",
	24: "혼노두",
	25: "치또이쯔",
	26: "준찬타",
	27: "혼일색",
	28: "량페코",
	29: "청일색",
	30: "일발",
	31: "도라",
	32: "적도라",
	33: "뒷도라",
	34: "북도라",
	35: "천화",
	36: "지화",
	37: "대삼원",
	38: "스안커",
	39: "자일색",
	40: "녹일색",
	41: "청노두",
	42: "국사무쌍",
	43: "소사희",
	44: "스깡쯔",
	45: "구련보등",
	46: "팔연장",
	47: "순정구련보등",
	48: "스안커 단기",
	49: "국사무쌍 13면 대기",
	50: "대사희",
}

// importantYakus is the set of hand names worth calling out in a summary:
// the named yakuman patterns.
var importantYakus = map[string]struct{}{
	"천화":          {},
	"지화":          {},
	"대삼원":         {},
	"스안커":         {},
	"자일색":         {},
	"녹일색":         {},
	"청노두":         {},
	"국사무쌍":        {},
	"소사희":         {},
	"스깡쯔":         {},
	"구련보등":        {},
	"순정구련보등":      {},
	"스안커 단기":      {},
	"국사무쌍 13면 대기": {},
	"대사희":         {},
}

// YakuName resolves a hand-type code to its display name.
func YakuName(id uint32) (string, bool) {
	name, ok := yakuNames[id]
	return name, ok
}

func isImportant(name string) bool {
	_, ok := importantYakus[name]
	return ok
}
