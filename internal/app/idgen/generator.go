package idgen

import (
	"errors"
	"sync"
	"time"
)

// 雪花算法（Snowflake）发号器：在多实例、无协调的前提下生成全局唯一、大致按时间有序的 64 位 ID。
//
// ID 的位布局（高位在前）：
// - 41 位：毫秒时间戳（相对 customEpoch）
// - 10 位：实例编号（instanceID，部署时分配，各实例必须不同）
// - 12 位：同一毫秒内的序号（sequence）
//
// 设计原因：
// - 唯一性不依赖存储或网络协调：碰撞需要 (时间戳, 实例, 序号) 三元组完全相同，而实例编号不同
// - 时间戳在高位：ID 按无符号整数比较即大致按生成时间排序，适合做数据库主键/短码底数
//
// 注意（面试常问点）：
// - 同一毫秒最多发 4096 个号，用完后必须等到下一毫秒（见 NextID 里的自旋）
// - 进程重启后序号从零重新开始：靠时间戳部分（而不是序号）保证与重启前的 ID 不冲突
const (
	// customEpoch 自定义纪元：2024-01-01 00:00:00 UTC（毫秒）。
	// 41 位毫秒约能用 69 年，选一个靠近上线时间的纪元可以把这 69 年用在未来而不是 1970 年。
	customEpoch int64 = 1704067200000

	instanceIDBits = 10
	sequenceBits   = 12

	maxInstanceID = (1 << instanceIDBits) - 1 // 1023
	sequenceMask  = (1 << sequenceBits) - 1   // 4095

	instanceIDShift = sequenceBits
	timestampShift  = sequenceBits + instanceIDBits
)

// ErrInstanceIDRange 表示实例编号超出 10 位可表示的范围 [0, 1023]。
// 只在构造时检查；检查失败就没有可用的发号器，调用方必须换一个编号重来。
var ErrInstanceIDRange = errors.New("idgen: instance id out of range [0, 1023]")

// ErrClockMovedBack 表示本次读到的时钟早于上一次发号时的时钟（NTP 回拨、手动改时间等）。
// 此时继续发号可能产生重复或乱序的 ID，所以把错误抛给调用方，而不是悄悄发一个坏号。
var ErrClockMovedBack = errors.New("idgen: clock moved backwards")

// Generator 是进程内的发号器。一个进程构造一个，注入到需要 ID 的服务里，
// 不要用包级全局变量（显式依赖便于测试和替换）。
//
// 并发约定：NextID 内部用互斥锁把“读时钟 → 判断序号 → 拼 ID”做成原子动作，
// 任意多个 goroutine 可以直接并发调用。
type Generator struct {
	mu         sync.Mutex
	instanceID int64
	sequence   int64
	lastTs     int64 // 上一次发号的毫秒时间戳（相对 customEpoch）；-1 表示还没发过号

	// now 返回当前的 Unix 毫秒。做成字段是为了让测试能注入假时钟
	// （和把 now 当参数传进业务函数是同一个思路）。
	now func() int64

	// onSequenceWait 在序号耗尽、开始等下一毫秒之前被调用（可为 nil）。
	// 由 Instrumented 挂上指标计数。
	onSequenceWait func()
}

// New 构造一个发号器。instanceID 必须在 [0, 1023] 内，且在所有同时运行的实例间唯一
// （唯一性由部署方保证，比如每个副本用不同的环境变量）。
func New(instanceID int64) (*Generator, error) {
	if instanceID < 0 || instanceID > maxInstanceID {
		return nil, ErrInstanceIDRange
	}
	return &Generator{
		instanceID: instanceID,
		lastTs:     -1,
		now:        func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// NextID 返回下一个 ID。
//
// 算法（整体在锁内执行）：
//  1. 读当前毫秒，减去 customEpoch
//  2. 比上次发号的毫秒还早 → 时钟回拨，返回 ErrClockMovedBack
//  3. 同一毫秒 → 序号 +1；序号用完（回绕到 0）就自旋等到下一毫秒
//  4. 新的毫秒 → 序号归零
//  5. 拼出 timestamp<<22 | instanceID<<12 | sequence
//
// 第 3 步的自旋是整个发号器唯一可能阻塞的地方：它在持锁状态下等待，后面的调用都排队，
// 相当于把发号速率压到时钟粒度上（故意的背压），最多等约 1 毫秒。
func (g *Generator) NextID() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now() - customEpoch
	if ts < g.lastTs {
		return 0, ErrClockMovedBack
	}
	if ts == g.lastTs {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			// 这一毫秒的 4096 个序号用完了，等时钟走到下一毫秒
			if g.onSequenceWait != nil {
				g.onSequenceWait()
			}
			for ts <= g.lastTs {
				ts = g.now() - customEpoch
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastTs = ts

	return uint64(ts)<<timestampShift |
		uint64(g.instanceID)<<instanceIDShift |
		uint64(g.sequence), nil
}

// InstanceID 返回构造时分配的实例编号。
func (g *Generator) InstanceID() int64 {
	return g.instanceID
}

// Split 把一个 ID 拆回三个字段，用于日志、排查和测试断言。
// timestamp 是相对 customEpoch 的毫秒数。
func Split(id uint64) (timestamp, instanceID, sequence uint64) {
	return id >> timestampShift,
		(id >> instanceIDShift) & maxInstanceID,
		id & sequenceMask
}

// MintedAt 返回 ID 的铸造时间（从时间戳字段还原成绝对时间）。
func MintedAt(id uint64) time.Time {
	ms := int64(id>>timestampShift) + customEpoch
	return time.UnixMilli(ms)
}
