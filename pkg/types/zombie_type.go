// Package types 定义共享的基础类型
package types

// ZombieType 定义僵尸的变体类型
// 变体只决定预设数据（血量、饰品），行为由统一的 Zombie 实现
type ZombieType int

const (
	// ZombieUnknown 未知僵尸类型
	ZombieUnknown ZombieType = iota

	ZombieBasic      // 普通僵尸
	ZombieConehead   // 路障僵尸
	ZombieBuckethead // 铁桶僵尸
	ZombieFlag       // 旗帜僵尸
)

// zombieTypeStringMap 僵尸类型到配置字符串的映射
var zombieTypeStringMap = map[ZombieType]string{
	ZombieBasic:      "basic",
	ZombieConehead:   "conehead",
	ZombieBuckethead: "buckethead",
	ZombieFlag:       "flag",
}

// stringToZombieTypeMap 配置字符串到僵尸类型的反向映射
var stringToZombieTypeMap map[string]ZombieType

func init() {
	stringToZombieTypeMap = make(map[string]ZombieType)
	for zt, s := range zombieTypeStringMap {
		stringToZombieTypeMap[s] = zt
	}
	// 别名（旧存档和场景文件中的写法）
	stringToZombieTypeMap["bucketheadzombie"] = ZombieBuckethead
	stringToZombieTypeMap["coneheadzombie"] = ZombieConehead
}

// String 返回僵尸类型的配置字符串表示（用于配置文件匹配）
func (z ZombieType) String() string {
	if s, ok := zombieTypeStringMap[z]; ok {
		return s
	}
	return "unknown"
}

// ZombieTypeFromString 将配置字符串转换为 ZombieType
// 支持标准名称和历史别名
func ZombieTypeFromString(s string) ZombieType {
	if zt, ok := stringToZombieTypeMap[s]; ok {
		return zt
	}
	return ZombieUnknown
}

// HasAccessory 判断该变体是否默认携带防具饰品
func (z ZombieType) HasAccessory() bool {
	switch z {
	case ZombieConehead, ZombieBuckethead:
		return true
	default:
		return false
	}
}
