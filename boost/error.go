
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有（c）2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package boost

import "fmt"

//错误代码标识重新平衡失败的原因。
type ErrorCode uint8

const (
//errinput表示调用者提供的交易、索引或费用不可用。
	ErrInput ErrorCode = iota

//errInsufficientOutputValue表示费用会使所选输出的值
//降为零或以下，或低于粉尘阈值。
	ErrInsufficientOutputValue

//errInvalidAddress表示子交易的目标地址无法解码。
	ErrInvalidAddress
)

var errStrs = [...]string{
	ErrInput:                   "ErrInput",
	ErrInsufficientOutputValue: "ErrInsufficientOutputValue",
	ErrInvalidAddress:          "ErrInvalidAddress",
}

//字符串将错误代码返回为人类可读的名称。
func (e ErrorCode) String() string {
	if e < ErrorCode(len(errStrs)) {
		return errStrs[e]
	}
	return fmt.Sprintf("ErrorCode(%d)", e)
}

//错误描述被拒绝的费用调整或子交易构造。
type Error struct {
ErrorCode ErrorCode //描述错误的类型
Description string  //问题的人类可读描述
Err         error   //基本错误，可选
}

//错误满足错误接口并打印人类可读的错误。
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

func boostError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}

//IsError返回err是否是具有匹配错误代码的Error。
func IsError(err error, code ErrorCode) bool {
	e, ok := err.(Error)
	return ok && e.ErrorCode == code
}

//IsInsufficientOutputValue返回err是否因为输出值不足而被拒绝。
func IsInsufficientOutputValue(err error) bool {
	return IsError(err, ErrInsufficientOutputValue)
}
