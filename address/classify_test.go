
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

package address_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/feebump/address"
)

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

const (
	halKey = "04ae1a62fe09c5f51b13905f07f06b99a2f7159b2225f374cd378d71302fa284" +
		"14e7aab37397f554a7df5f142c21c1b7303b8a0626f1baded5c72a704f7e6cd84c"
	satoshiKey = "0411db93e1dcdb8a016b49840f8c53bc1eb68a382e97b1482ecad7b148a6909a" +
		"5cb2e0eaddfb84ccf9744464f82e160bfa9b8b64f9d4c03f999b8643f656b412a3"
	genesisKeyCompressed = "03678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb6"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		script string
		class  address.ScriptClass
		data   string
		addr   string
	}{
		{
			name:   "p2pkh",
			script: "76a914" + "1111111111111111111111111111111111111111" + "88ac",
			class:  address.PubKeyHashTy,
			data:   "1111111111111111111111111111111111111111",
			addr:   "12ZEw5Hcv1hTb6YUQJ69y1V7uhcoDz92PH",
		},
		{
			name:   "p2sh",
			script: "a914" + "2222222222222222222222222222222222222222" + "87",
			class:  address.ScriptHashTy,
			data:   "2222222222222222222222222222222222222222",
			addr:   "34oVnh4gNviJGMnNvgquMeLAxvXJuaRVMZ",
		},
		{
			name:   "p2pk uncompressed hal",
			script: "41" + halKey + "ac",
			class:  address.PubKeyUncompressedTy,
			data:   halKey,
			addr:   "1Q2TWHE3GMdB6BZKafqwxXtWAWgFt5Jvm3",
		},
		{
			name:   "p2pk uncompressed satoshi",
			script: "41" + satoshiKey + "ac",
			class:  address.PubKeyUncompressedTy,
			data:   satoshiKey,
			addr:   "12cbQLTFMXRnSzktFkuoG3eHoMeFtpTu3S",
		},
		{
			name:   "p2pk compressed",
			script: "21" + genesisKeyCompressed + "ac",
			class:  address.PubKeyCompressedTy,
			data:   genesisKeyCompressed,
			addr:   "1FYPDCP1uVnPgEE3gaDMbAApdv9XYX7Si5",
		},
		{
			name:   "empty",
			script: "",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
		{
			name:   "truncated p2pkh",
			script: "76a914" + "1111111111111111111111111111111111111111" + "88",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
		{
			name:   "p2pkh with trailing op",
			script: "76a914" + "1111111111111111111111111111111111111111" + "88ac61",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
		{
			name:   "p2sh with equalverify",
			script: "a914" + "2222222222222222222222222222222222222222" + "88",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
		{
			name:   "compressed key with bad prefix",
			script: "21" + "05" + genesisKeyCompressed[2:] + "ac",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
		{
			name:   "uncompressed key with bad prefix",
			script: "41" + "06" + halKey[2:] + "ac",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
		{
			name:   "op_return",
			script: "6a0568656c6c6f",
			class:  address.NonStandardTy,
			addr:   address.NonStandardAddress,
		},
	}

	for _, test := range tests {
		script := hexToBytes(test.script)
		c := address.Classify(script)
		if c.Class != test.class {
			t.Errorf("%s: got class %v want %v", test.name, c.Class,
				test.class)
			continue
		}
		if !bytes.Equal(c.Data, hexToBytes(test.data)) {
			t.Errorf("%s: got data %x want %s", test.name, c.Data, test.data)
		}
		addr := address.DeriveAddress(script, &chaincfg.MainNetParams)
		if addr != test.addr {
			t.Errorf("%s: got address %s want %s", test.name, addr, test.addr)
		}
	}
}

func TestClassifyDataIsCopied(t *testing.T) {
	script := hexToBytes("76a914" + "1111111111111111111111111111111111111111" + "88ac")
	c := address.Classify(script)
	script[3] = 0xff
	if c.Data[0] != 0x11 {
		t.Errorf("classified data aliases the script")
	}
}

func TestClassifiedHash160(t *testing.T) {
	c := address.Classify(hexToBytes("41" + halKey + "ac"))
	want := "fc916f213a3d7f1369313d5fa30f6168f9446a2d"
	if got := hex.EncodeToString(c.Hash160()); got != want {
		t.Errorf("got hash160 %s want %s", got, want)
	}
	if h := address.Classify(nil).Hash160(); h != nil {
		t.Errorf("nonstandard script has hash160 %x", h)
	}
}

func TestPayToAddrScript(t *testing.T) {
	tests := []struct {
		name   string
		addr   string
		params *chaincfg.Params
		want   string
		code   address.ErrorCode
		err    bool
	}{
		{
			name:   "mainnet p2pkh",
			addr:   "12ZEw5Hcv1hTb6YUQJ69y1V7uhcoDz92PH",
			params: &chaincfg.MainNetParams,
			want:   "76a914" + "1111111111111111111111111111111111111111" + "88ac",
		},
		{
			name:   "mainnet p2sh",
			addr:   "34oVnh4gNviJGMnNvgquMeLAxvXJuaRVMZ",
			params: &chaincfg.MainNetParams,
			want:   "a914" + "2222222222222222222222222222222222222222" + "87",
		},
		{
			name:   "testnet p2pkh",
			addr:   "mh5CE8Nbj38iND267s4XnvhSmhDW7yWc6Q",
			params: &chaincfg.TestNet3Params,
			want:   "76a914" + "1111111111111111111111111111111111111111" + "88ac",
		},
		{
			name:   "testnet address on mainnet",
			addr:   "mh5CE8Nbj38iND267s4XnvhSmhDW7yWc6Q",
			params: &chaincfg.MainNetParams,
			code:   address.ErrVersion,
			err:    true,
		},
		{
			name:   "unknown version",
			addr:   "RtqvBaudCALQXgZRiRUT8kuYCsjxPFk8P",
			params: &chaincfg.MainNetParams,
			code:   address.ErrVersion,
			err:    true,
		},
		{
			name:   "bad checksum",
			addr:   "12ZEw5Hcv1hTb6YUQJ69y1V7uhcoDz92PJ",
			params: &chaincfg.MainNetParams,
			code:   address.ErrChecksum,
			err:    true,
		},
	}

	for _, test := range tests {
		script, err := address.PayToAddrScript(test.addr, test.params)
		if test.err {
			if err == nil {
				t.Errorf("%s: expected error, got script %x", test.name,
					script)
				continue
			}
			aerr, ok := err.(address.Error)
			if !ok || aerr.Code != test.code {
				t.Errorf("%s: got error %v want code %v", test.name, err,
					test.code)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if got := hex.EncodeToString(script); got != test.want {
			t.Errorf("%s\ngot: %s\nwant: %s", test.name, got, test.want)
		}
//构建的脚本必须分类回相同的地址。
		if addr := address.DeriveAddress(script, test.params); addr != test.addr {
			t.Errorf("%s: derived %s from built script", test.name, addr)
		}
	}
}

func TestScriptClassStringer(t *testing.T) {
	tests := []struct {
		in   address.ScriptClass
		want string
	}{
		{address.NonStandardTy, "nonstandard"},
		{address.PubKeyHashTy, "pubkeyhash"},
		{address.ScriptHashTy, "scripthash"},
		{address.PubKeyCompressedTy, "pubkey-compressed"},
		{address.PubKeyUncompressedTy, "pubkey-uncompressed"},
		{0xff, "ScriptClass(255)"},
	}
	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String #%d\ngot: %s\nwant: %s", i, got, test.want)
		}
	}
}
