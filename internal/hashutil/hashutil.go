
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

//包hashutil提供事务和地址代码共享的字节与哈希辅助函数。
//包装仅限内部使用。
package hashutil

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
)

//DoubleSHA256返回sha256（sha256（b））。
func DoubleSHA256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

//ReverseBytes返回b的字节顺序反转副本。b本身不被修改。
//事务ID和以前的输出引用以与线路编码相反的顺序显示。
func ReverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[len(b)-1-i] = b[i]
	}
	return r
}

//Hash160返回ripemd160（sha256（b）），即标识公钥或脚本的20字节摘要。
func Hash160(b []byte) []byte {
	return btcutil.Hash160(b)
}

//DecodeHex解码十六进制字符串。前后空白被忽略，大小写均可。
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimSpace(s))
}

//EncodeHex以小写十六进制编码b。
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
