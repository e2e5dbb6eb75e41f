// Package lookup 提供联想查询的序号防护：每次新查询递增序号，
// 迟到的旧响应按序号丢弃，保证界面只反映最后一次输入。
//
// Resolver 是内嵌客户端消费搜索接口时的丢弃契约：客户端每次输入
// 用 Begin 取号并作为 seq 参数随请求发出，服务端在响应里原样回显
// （见 warranty 搜索接口），响应到达后经 Deliver 过滤，只有仍是
// 最新序号的结果才会落到界面上。
package lookup

import (
	"sync"
)

// Resolver 为一个输入框维护单调递增的查询序号。
type Resolver struct {
	mu   sync.Mutex
	seq  uint64
	last uint64 // 最近一次被接受的响应序号
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Begin 开始一次新查询，返回其序号。之前未完成的查询即刻过期。
func (r *Resolver) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq
}

// Deliver 提交序号为 token 的查询结果。仅当 token 仍是最新序号时
// 执行 apply 并返回 true；过期响应被静默丢弃。
func (r *Resolver) Deliver(token uint64, apply func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.seq || token <= r.last {
		return false
	}
	r.last = token
	if apply != nil {
		apply()
	}
	return true
}

// Current 返回当前最新序号，0 表示尚未开始过查询。
func (r *Resolver) Current() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// Cancel 使所有在途查询过期，但不开始新查询。
func (r *Resolver) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.last = r.seq
}
