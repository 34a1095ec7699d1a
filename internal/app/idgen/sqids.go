package idgen

import (
	"errors"
	"sync"

	"github.com/sqids/sqids-go"
)

// ErrInvalidSqid 表示 SqidsDecode 的输入不是本字母表下单个数字的编码。
var ErrInvalidSqid = errors.New("idgen: invalid sqid")

var (
	sq   *sqids.Sqids
	once sync.Once
)

// getSqids 懒初始化共享的 Sqids 实例。
// 字母表是打乱过的：同一个 ID 编出来的短码和 Base62 不同，且不易被按序枚举。
func getSqids() *sqids.Sqids {
	once.Do(func() {
		var err error
		sq, err = sqids.New(sqids.Options{
			Alphabet:  "k3G7QAe51FCsiWrNOYBUwM6XzZvdLT4j9JhyHKg2cVbxfERq0mSoI8lDpunPat",
			MinLength: 3,
		})
		if err != nil {
			panic("sqids init failed: " + err.Error())
		}
	})
	return sq
}

// SqidsEncode 把一个 ID 编码成混淆短码（Base62 之外的备选方案）。
func SqidsEncode(id uint64) (string, error) {
	return getSqids().Encode([]uint64{id})
}

// SqidsDecode 把 SqidsEncode 的结果还原成 ID。
func SqidsDecode(s string) (uint64, error) {
	nums := getSqids().Decode(s)
	if len(nums) != 1 {
		return 0, ErrInvalidSqid
	}
	return nums[0], nil
}
