
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

package address

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/btcsuite/feebump/internal/hashutil"
)

//NonStandardAddress是为不匹配任何已识别模板的脚本返回的哨兵。
const NonStandardAddress = "Non Standard Output"

//ScriptClass是已识别的输出脚本模板的枚举。
type ScriptClass byte

//支持的输出脚本类。
const (
	NonStandardTy        ScriptClass = iota //无可识别的格式。
	PubKeyHashTy                            //支付到公钥哈希。
	ScriptHashTy                            //支付到脚本哈希。
	PubKeyCompressedTy                      //支付到压缩公钥。
	PubKeyUncompressedTy                    //支付到未压缩公钥。
)

//模板的长度。
const (
	p2pkhScriptLen          = 25
	p2shScriptLen           = 23
	p2pkCompressedLen       = 1 + 33 + 1
	p2pkUncompressedLen     = 1 + 65 + 1
	pubKeyCompressedEven    = 0x02
	pubKeyCompressedOdd     = 0x03
	pubKeyUncompressedMagic = 0x04
)

var scriptClassToName = []string{
	NonStandardTy:        "nonstandard",
	PubKeyHashTy:         "pubkeyhash",
	ScriptHashTy:         "scripthash",
	PubKeyCompressedTy:   "pubkey-compressed",
	PubKeyUncompressedTy: "pubkey-uncompressed",
}

//字符串实现字符串接口。
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return fmt.Sprintf("ScriptClass(%d)", t)
	}
	return scriptClassToName[t]
}

//Classified是对输出脚本进行分类的结果。Data保存p2pkh和p2sh的
//hash160，或p2pk的公钥；非标准脚本的Data为nil。
type Classified struct {
	Class ScriptClass
	Data  []byte
}

//Classify通过结构字节模式匹配对输出脚本进行分类。
//每个脚本恰好映射到一个结果，包括NonStandardTy；从不失败。
func Classify(script []byte) Classified {
	switch {
	case isPubKeyHash(script):
		return Classified{Class: PubKeyHashTy, Data: clone(script[3:23])}

	case isScriptHash(script):
		return Classified{Class: ScriptHashTy, Data: clone(script[2:22])}

	case isPubKey(script, p2pkUncompressedLen, txscript.OP_DATA_65):
		if script[1] == pubKeyUncompressedMagic {
			return Classified{Class: PubKeyUncompressedTy,
				Data: clone(script[1:66])}
		}

	case isPubKey(script, p2pkCompressedLen, txscript.OP_DATA_33):
		if script[1] == pubKeyCompressedEven ||
			script[1] == pubKeyCompressedOdd {
			return Classified{Class: PubKeyCompressedTy,
				Data: clone(script[1:34])}
		}
	}
	return Classified{Class: NonStandardTy}
}

//Hash160返回支付所针对的hash160。对于p2pk，这是公钥的hash160。
//非标准脚本返回nil。
func (c Classified) Hash160() []byte {
	switch c.Class {
	case PubKeyHashTy, ScriptHashTy:
		return c.Data
	case PubKeyCompressedTy, PubKeyUncompressedTy:
		return hashutil.Hash160(c.Data)
	}
	return nil
}

//Address返回已分类脚本在给定网络上的base58check地址，
//对于非标准脚本返回NonStandardAddress。
func (c Classified) Address(params *chaincfg.Params) string {
	switch c.Class {
	case PubKeyHashTy, PubKeyCompressedTy, PubKeyUncompressedTy:
		return EncodeCheck(params.PubKeyHashAddrID, c.Hash160())
	case ScriptHashTy:
		return EncodeCheck(params.ScriptHashAddrID, c.Hash160())
	}
	return NonStandardAddress
}

//DeriveAddress对脚本进行分类并返回其地址。p2pkh和p2pk使用网络的
//公钥哈希版本（主网0x00），p2sh使用脚本哈希版本（主网0x05）。
func DeriveAddress(script []byte, params *chaincfg.Params) string {
	return Classify(script).Address(params)
}

//PayToAddrScript解码base58check地址并为其构建输出脚本：
//公钥哈希版本得到p2pkh模板，脚本哈希版本得到p2sh模板。
//任何其他版本或解码失败都返回Error。
func PayToAddrScript(addr string, params *chaincfg.Params) ([]byte, error) {
	version, hash160, err := DecodeCheck(addr)
	if err != nil {
		return nil, err
	}

	switch version {
	case params.PubKeyHashAddrID:
		return txscript.NewScriptBuilder().
			AddOp(txscript.OP_DUP).
			AddOp(txscript.OP_HASH160).
			AddData(hash160).
			AddOp(txscript.OP_EQUALVERIFY).
			AddOp(txscript.OP_CHECKSIG).
			Script()

	case params.ScriptHashAddrID:
		return txscript.NewScriptBuilder().
			AddOp(txscript.OP_HASH160).
			AddData(hash160).
			AddOp(txscript.OP_EQUAL).
			Script()
	}

	str := fmt.Sprintf("address version 0x%02x is neither pubkey hash "+
		"(0x%02x) nor script hash (0x%02x) on %s", version,
		params.PubKeyHashAddrID, params.ScriptHashAddrID, params.Name)
	return nil, addressError(ErrVersion, str, nil)
}

//isPubKeyHash：OP_DUP OP_HASH160 <20字节> OP_EQUALVERIFY OP_CHECKSIG
func isPubKeyHash(script []byte) bool {
	return len(script) == p2pkhScriptLen &&
		script[0] == txscript.OP_DUP &&
		script[1] == txscript.OP_HASH160 &&
		script[2] == txscript.OP_DATA_20 &&
		script[23] == txscript.OP_EQUALVERIFY &&
		script[24] == txscript.OP_CHECKSIG
}

//isScriptHash：OP_HASH160 <20字节> OP_EQUAL
func isScriptHash(script []byte) bool {
	return len(script) == p2shScriptLen &&
		script[0] == txscript.OP_HASH160 &&
		script[1] == txscript.OP_DATA_20 &&
		script[22] == txscript.OP_EQUAL
}

func isPubKey(script []byte, size int, push byte) bool {
	return len(script) == size &&
		script[0] == push &&
		script[size-1] == txscript.OP_CHECKSIG
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
