
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

package rawtx

import "fmt"

//错误代码标识错误的类别。
type ErrorCode uint8

//这些常量用于标识特定的错误。
const (
//errhex表示输入不是有效的十六进制字符串。
	ErrHex ErrorCode = iota

//errtruncated表示字节流在字段完成之前结束。
	ErrTruncated

//errnoncanonicalvarint表示压缩整数使用了比所需更宽的编码。
//接受这样的编码会破坏序列化往返。
	ErrNonCanonicalVarInt

//errcount表示声明的输入、输出或脚本长度不可能
//放入剩余的字节中。
	ErrCount

//errtrailingdata表示锁定时间之后还有多余的字节。
	ErrTrailingData

//errwitness表示流使用了不受支持的见证序列化。
	ErrWitness

//errvalue表示输出值的调整会使其为零或负数。
	ErrValue
)

var errStrs = [...]string{
	ErrHex:                "ErrHex",
	ErrTruncated:          "ErrTruncated",
	ErrNonCanonicalVarInt: "ErrNonCanonicalVarInt",
	ErrCount:              "ErrCount",
	ErrTrailingData:       "ErrTrailingData",
	ErrWitness:            "ErrWitness",
	ErrValue:              "ErrValue",
}

//字符串将错误代码返回为人类可读的名称。
func (e ErrorCode) String() string {
	if e < ErrorCode(len(errStrs)) {
		return errStrs[e]
	}
	return fmt.Sprintf("ErrorCode(%d)", e)
}

//错误为解码和编辑事务时可能发生的错误提供单一类型。
type Error struct {
Code   ErrorCode //描述错误的类型
Desc   string    //问题的人类可读描述
Offset int       //发生错误的字节偏移量，不适用时为-1
Err    error     //基本错误，可选
}

//错误满足错误接口并打印人类可读的错误。
func (e Error) Error() string {
	s := e.Desc
	if e.Offset >= 0 {
		s = fmt.Sprintf("%s (offset %d)", s, e.Offset)
	}
	if e.Err != nil {
		return s + ": " + e.Err.Error()
	}
	return s
}

func parseError(c ErrorCode, offset int, desc string) Error {
	return Error{Code: c, Desc: desc, Offset: offset}
}

//IsParseError返回err是否描述了格式错误或截断的事务字节流。
func IsParseError(err error) bool {
	rerr, ok := err.(Error)
	return ok && rerr.Code != ErrValue
}
