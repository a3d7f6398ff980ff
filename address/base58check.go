
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

//包address实现base58check地址编码以及输出脚本的分类和地址派生。
//
//分类从不失败：任何不匹配已识别模板的脚本都是非标准的，
//并派生出一个固定的哨兵字符串，而不是错误。
package address

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/btcsuite/btcutil/base58"
)

const (
//Alphabet是base58字母表。数字0、大写O、大写I和小写l被排除。
	Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

//Hash160Size是地址有效载荷的长度。
	Hash160Size = 20

//decodedlen是版本字节+hash160+4字节校验和。
	decodedLen = 1 + Hash160Size + 4
)

//EncodeCheck将版本字节和hash160编码为base58check字符串。
//校验和是dsha256（version‖hash160）的前4个字节；预编码缓冲区中的
//每个前导零字节都变为一个前导“1”。
func EncodeCheck(version byte, hash160 []byte) string {
	return base58.CheckEncode(hash160, version)
}

//DecodeCheck解码base58check地址并返回其版本字节和hash160。
//字母表之外的字符、错误的解码长度或不匹配的校验和都返回Error。
func DecodeCheck(addr string) (byte, []byte, error) {
	if addr == "" {
		return 0, nil, addressError(ErrLength, "empty address", nil)
	}
	if i := strings.IndexFunc(addr, func(r rune) bool {
		return !strings.ContainsRune(Alphabet, r)
	}); i >= 0 {
		r, _ := utf8.DecodeRuneInString(addr[i:])
		str := fmt.Sprintf("address has invalid base58 character %q "+
			"at position %d", r, i)
		return 0, nil, addressError(ErrCharacter, str, nil)
	}

	if n := len(base58.Decode(addr)); n != decodedLen {
		str := fmt.Sprintf("address decodes to %d bytes, want %d", n,
			decodedLen)
		return 0, nil, addressError(ErrLength, str, nil)
	}

	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		if err == base58.ErrChecksum {
			return 0, nil, addressError(ErrChecksum,
				"address checksum mismatch", err)
		}
		return 0, nil, addressError(ErrLength, "malformed address", err)
	}
	return version, payload, nil
}
