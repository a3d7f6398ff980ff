
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
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"

	"github.com/btcsuite/feebump/internal/hashutil"
)

const (
//block170Tx是区块170中的第一个人对人交易，有两个p2pk输出。
	block170Tx = "0100000001c997a5e56e104102fa209c6a852dd90660a20b2d9c352423" +
		"edce25857fcd3704000000004847304402204e45e16932b8af514961a1d3a1a2" +
		"5fdf3f4f7732e9d624c6c61548ab5fb8cd410220181522ec8eca07de4860a4ac" +
		"dd12909d831cc56cbbac4622082221a8768d1d0901ffffffff0200ca9a3b0000" +
		"0000434104ae1a62fe09c5f51b13905f07f06b99a2f7159b2225f374cd378d71" +
		"302fa28414e7aab37397f554a7df5f142c21c1b7303b8a0626f1baded5c72a70" +
		"4f7e6cd84cac00286bee0000000043410411db93e1dcdb8a016b49840f8c53bc" +
		"1eb68a382e97b1482ecad7b148a6909a5cb2e0eaddfb84ccf9744464f82e160b" +
		"fa9b8b64f9d4c03f999b8643f656b412a3ac00000000"
	block170TxID = "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16"

//replaceableTx花费block170Tx的输出1，具有一个p2pkh和一个p2sh输出，
//并且序列号选择加入BIP125。
	replaceableTx = "0200000001169e1e83e930853391bc6f35f605c6754cfead57cf838763" +
		"9d3b4096c54f18f4010000004847000102030405060708090a0b0c0d0e0f1011" +
		"12131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f3031" +
		"32333435363738393a3b3c3d3e3f40414243444546fdffffff02a08601000000" +
		"00001976a914111111111111111111111111111111111111111188ac50c30000" +
		"0000000017a91422222222222222222222222222222222222222228700000000"
	replaceableTxID = "2890dc94fa921ea3d9df0bce31004b19284c2bac167ffc211567ca5c19ee3931"

	replaceableTxUnsigned = "0200000001169e1e83e930853391bc6f35f605c6754cfead" +
		"57cf8387639d3b4096c54f18f40100000000fdffffff02a08601000000000019" +
		"76a914111111111111111111111111111111111111111188ac50c30000000000" +
		"0017a91422222222222222222222222222222222222222228700000000"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test hex: %v", err)
	}
	return b
}

//TestDeserializeRoundTrip确保解码然后签名编码会重现原始字节。
func TestDeserializeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		id   string
	}{
		{"block 170", block170Tx, block170TxID},
		{"replaceable", replaceableTx, replaceableTxID},
	}
	for _, test := range tests {
		raw := mustDecodeHex(t, test.hex)
		tx, err := Deserialize(raw)
		if err != nil {
			t.Errorf("%s: Deserialize: %v", test.name, err)
			continue
		}
		if got := Serialize(tx, false); !bytes.Equal(got, raw) {
			t.Errorf("%s: round trip mismatch\ngot:  %x\nwant: %x",
				test.name, got, raw)
		}
		if tx.TxID() != test.id {
			t.Errorf("%s: got id %s want %s", test.name, tx.TxID(),
				test.id)
		}
		wantID := hashutil.EncodeHex(hashutil.ReverseBytes(
			hashutil.DoubleSHA256(raw)))
		if tx.TxID() != wantID {
			t.Errorf("%s: id %s is not reversed double sha256 %s",
				test.name, tx.TxID(), wantID)
		}
		if tx.Size() != len(raw) {
			t.Errorf("%s: got size %d want %d", test.name, tx.Size(),
				len(raw))
		}
		if tx.SerializeSize(false) != len(raw) {
			t.Errorf("%s: got serialize size %d want %d", test.name,
				tx.SerializeSize(false), len(raw))
		}
	}
}

func TestDeserializeFields(t *testing.T) {
	tx, err := DeserializeHex(block170Tx)
	if err != nil {
		t.Fatalf("DeserializeHex: %v", err)
	}
	if tx.Version != 1 || tx.LockTime != 0 {
		t.Errorf("got version %d locktime %d", tx.Version, tx.LockTime)
	}
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 2 {
		t.Fatalf("got %d inputs %d outputs", len(tx.Inputs),
			len(tx.Outputs))
	}

	in := tx.Inputs[0]
	wantPrev := "0437cd7f8525ceed2324359c2d0ba26006d92d856a9c20fa0241106ee5a597c9"
	if in.PrevTxID.String() != wantPrev {
		t.Errorf("got previous txid %v want %v", in.PrevTxID, wantPrev)
	}
	if in.PrevIndex != 0 || in.Sequence != MaxTxInSequenceNum {
		t.Errorf("got previous index %d sequence %#x", in.PrevIndex,
			in.Sequence)
	}
	if len(in.Script) != 0x48 {
		t.Errorf("got input script length %d", len(in.Script))
	}

	if tx.Outputs[0].Value != 10e8 || tx.Outputs[1].Value != 40e8 {
		t.Errorf("got output values %d %d", tx.Outputs[0].Value,
			tx.Outputs[1].Value)
	}
	if tx.TotalOutputAmount() != 50e8 {
		t.Errorf("got total output amount %d", tx.TotalOutputAmount())
	}
	if tx.Fee != 0 {
		t.Errorf("decoded fee should be unset, got %d", tx.Fee)
	}
	if tx.SignalsReplacement() {
		t.Errorf("final sequence reported as replaceable")
	}
}

//TestDeserializeDeterministic确保相同的十六进制总是得到相同的ID和结构。
func TestDeserializeDeterministic(t *testing.T) {
	tx1, err := DeserializeHex(replaceableTx)
	if err != nil {
		t.Fatal(err)
	}
	tx2, err := DeserializeHex("  " + strings.ToUpper(replaceableTx) + "\n")
	if err != nil {
		t.Fatal(err)
	}
	if *tx1.Hash() != *tx2.Hash() {
		t.Fatalf("ids differ: %v %v", tx1.Hash(), tx2.Hash())
	}
	dump := spew.ConfigState{Indent: " ", DisablePointerAddresses: true}
	if dump.Sdump(tx1) != dump.Sdump(tx2) {
		t.Fatalf("decoded transactions differ:\n%v\n%v",
			dump.Sdump(tx1), dump.Sdump(tx2))
	}
}

func TestSerializeUnsigned(t *testing.T) {
	tx, err := DeserializeHex(replaceableTx)
	if err != nil {
		t.Fatal(err)
	}
	got := SerializeHex(tx, true)
	if got != replaceableTxUnsigned {
		t.Errorf("unsigned serialization mismatch\ngot:  %s\nwant: %s",
			got, replaceableTxUnsigned)
	}
	if n := tx.SerializeSize(true); n != len(replaceableTxUnsigned)/2 {
		t.Errorf("got unsigned size %d want %d", n,
			len(replaceableTxUnsigned)/2)
	}
//预览不能改变解码的事务。
	if SerializeHex(tx, false) != replaceableTx {
		t.Errorf("unsigned serialization modified the transaction")
	}
}

//TestDeserializeTruncated确保有效事务的每个严格前缀都被拒绝。
func TestDeserializeTruncated(t *testing.T) {
	raw := mustDecodeHex(t, replaceableTx)
	for i := 0; i < len(raw); i++ {
		tx, err := Deserialize(raw[:i])
		if err == nil {
			t.Fatalf("prefix of %d bytes decoded: %v", i, spew.Sdump(tx))
		}
		if tx != nil {
			t.Fatalf("prefix of %d bytes returned a partial transaction", i)
		}
		if !IsParseError(err) {
			t.Fatalf("prefix of %d bytes: not a parse error: %v", i, err)
		}
	}
}

func TestDeserializeMalformed(t *testing.T) {
	valid := mustDecodeHex(t, replaceableTx)

	hugeInputs := []byte{0x01, 0x00, 0x00, 0x00, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
		0x00, 0x00, 0x00, 0x00}

//在唯一输入中声明一个巨大的脚本长度。
	hugeScript := append([]byte{0x01, 0x00, 0x00, 0x00, 0x01},
		make([]byte, 32+4)...)
	hugeScript = append(hugeScript, 0xfe, 0xff, 0xff, 0xff, 0x7f,
		0xff, 0xff, 0xff, 0xff)

	witness := []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01}
	witness = append(witness, valid[5:]...)

	nonCanonical := []byte{0x01, 0x00, 0x00, 0x00, 0xfd, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00}

	tests := []struct {
		name string
		raw  []byte
		code ErrorCode
	}{
		{"empty", nil, ErrTruncated},
		{"too short", []byte{0x01, 0x00, 0x00}, ErrTruncated},
		{"trailing byte", append(append([]byte{}, valid...), 0x00), ErrTrailingData},
		{"huge input count", hugeInputs, ErrCount},
		{"huge script length", hugeScript, ErrCount},
		{"witness marker", witness, ErrWitness},
		{"non-canonical count", nonCanonical, ErrNonCanonicalVarInt},
	}
	for _, test := range tests {
		tx, err := Deserialize(test.raw)
		if err == nil || tx != nil {
			t.Errorf("%s: expected failure, got tx %v err %v", test.name,
				tx, err)
			continue
		}
		rerr, ok := err.(Error)
		if !ok {
			t.Errorf("%s: got error type %T", test.name, err)
			continue
		}
		if rerr.Code != test.code {
			t.Errorf("%s: got code %v want %v (%v)", test.name,
				rerr.Code, test.code, err)
		}
	}

	_, err := DeserializeHex("0100zz")
	if rerr, ok := err.(Error); !ok || rerr.Code != ErrHex {
		t.Errorf("bad hex: got %v", err)
	}
}

func TestSerializeConstructed(t *testing.T) {
	prev, err := chainhash.NewHashFromStr(replaceableTxID)
	if err != nil {
		t.Fatal(err)
	}
	tx := NewTransaction()
	tx.AddInput(NewInput(prev, 0))
	tx.AddOutput(NewOutput(48000, mustDecodeHex(t,
		"76a914111111111111111111111111111111111111111188ac")))

	if tx.Hash() != nil || tx.TxID() != "" {
		t.Fatalf("constructed transaction has an id: %v", tx.TxID())
	}

	signed := Serialize(tx, false)
	unsigned := Serialize(tx, true)
//空脚本的签名形式和未签名形式在线路上相同。
	if !bytes.Equal(signed, unsigned) {
		t.Errorf("empty script serializations differ:\n%x\n%x",
			signed, unsigned)
	}
	if tx.Size() != len(signed) {
		t.Errorf("got size %d want %d", tx.Size(), len(signed))
	}

	decoded, err := Deserialize(signed)
	if err != nil {
		t.Fatalf("Deserialize constructed: %v", err)
	}
	if decoded.Inputs[0].PrevTxID != *prev {
		t.Errorf("previous txid did not survive: %v", decoded.Inputs[0].PrevTxID)
	}
	if decoded.Outputs[0].Value != 48000 {
		t.Errorf("got value %d", decoded.Outputs[0].Value)
	}
}

func TestMsgTx(t *testing.T) {
	tx, err := DeserializeHex(replaceableTx)
	if err != nil {
		t.Fatal(err)
	}
	msgTx, err := tx.MsgTx()
	if err != nil {
		t.Fatalf("MsgTx: %v", err)
	}
	if msgTx.TxHash() != *tx.Hash() {
		t.Errorf("wire hash %v differs from %v", msgTx.TxHash(), tx.Hash())
	}
	if len(msgTx.TxOut) != 2 || msgTx.TxOut[0].Value != 100000 {
		t.Errorf("unexpected wire outputs: %v", spew.Sdump(msgTx.TxOut))
	}
}
