
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

import (
	"encoding/binary"
	"fmt"
)

//压缩整数的判别字节。
const (
	varIntUint16 = 0xfd
	varIntUint32 = 0xfe
	varIntUint64 = 0xff
)

//ReadVarInt从buf的offset处读取比特币压缩大小整数，并返回
//值和消耗的字节数。剩余字节不足或编码不规范时返回错误。
func ReadVarInt(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0, parseError(ErrTruncated, offset,
			"missing compact size discriminant")
	}

	var (
		value uint64
		size  int
		floor uint64
	)
	switch d := buf[offset]; d {
	case varIntUint16:
		size, floor = 3, varIntUint16
	case varIntUint32:
		size, floor = 5, 0x10000
	case varIntUint64:
		size, floor = 9, 0x100000000
	default:
		return uint64(d), 1, nil
	}

	if len(buf)-offset < size {
		str := fmt.Sprintf("compact size needs %d bytes, %d remain",
			size, len(buf)-offset)
		return 0, 0, parseError(ErrTruncated, offset, str)
	}
	payload := buf[offset+1 : offset+size]
	switch size {
	case 3:
		value = uint64(binary.LittleEndian.Uint16(payload))
	case 5:
		value = uint64(binary.LittleEndian.Uint32(payload))
	case 9:
		value = binary.LittleEndian.Uint64(payload)
	}

//较宽的编码只允许用于不能以较窄编码表示的值。
	if value < floor {
		str := fmt.Sprintf("non-canonical compact size %d encoded "+
			"with discriminant %#x", value, buf[offset])
		return 0, 0, parseError(ErrNonCanonicalVarInt, offset, str)
	}

	return value, size, nil
}

//VarInt返回value的压缩大小编码。每个分支都返回其构造的缓冲区。
func VarInt(value uint64) []byte {
	switch {
	case value < varIntUint16:
		return []byte{byte(value)}

	case value <= 0xffff:
		b := make([]byte, 3)
		b[0] = varIntUint16
		binary.LittleEndian.PutUint16(b[1:], uint16(value))
		return b

	case value <= 0xffffffff:
		b := make([]byte, 5)
		b[0] = varIntUint32
		binary.LittleEndian.PutUint32(b[1:], uint32(value))
		return b

	default:
		b := make([]byte, 9)
		b[0] = varIntUint64
		binary.LittleEndian.PutUint64(b[1:], value)
		return b
	}
}

//VarIntSerializeSize返回序列化value所需的字节数。
func VarIntSerializeSize(value uint64) int {
	switch {
	case value < varIntUint16:
		return 1
	case value <= 0xffff:
		return 3
	case value <= 0xffffffff:
		return 5
	}
	return 9
}
