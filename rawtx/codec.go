
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
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/btcsuite/feebump/internal/hashutil"
)

const (
//mintxinpayload是序列化输入的最小大小：
//32字节哈希+4字节索引+1字节脚本长度+4字节序列。
	minTxInPayload = 32 + 4 + 1 + 4

//mintxoutpayload是序列化输出的最小大小：
//8字节值+1字节脚本长度。
	minTxOutPayload = 8 + 1

//mintxpayload是序列化事务的最小大小：
//4字节版本+1字节输入计数+1字节输出计数+4字节锁定时间。
	minTxPayload = 4 + 1 + 1 + 4

//witnessflag跟随见证序列化中的零标记字节。
	witnessFlag = 0x01
)

//reader是一个跟踪已消耗字节的字节流游标。每次读取在
//越界之前都要检查剩余的长度，所以攻击者构造的计数不会导致分配。
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) next(n int, field string) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		str := fmt.Sprintf("%s needs %d bytes, %d remain", field, n,
			r.remaining())
		return nil, parseError(ErrTruncated, r.off, str)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint32(field string) (uint32, error) {
	b, err := r.next(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64(field string) (uint64, error) {
	b, err := r.next(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) varInt() (uint64, error) {
	v, n, err := ReadVarInt(r.buf, r.off)
	if err != nil {
		return 0, err
	}
	r.off += n
	return v, nil
}

//count读取一个压缩整数计数，并拒绝不能以每项最小大小放入剩余字节中的计数。
func (r *reader) count(field string, minItemSize int) (int, error) {
	offset := r.off
	v, err := r.varInt()
	if err != nil {
		return 0, err
	}
	if v > uint64(r.remaining()/minItemSize) {
		str := fmt.Sprintf("%s %d exceeds what the remaining %d "+
			"bytes can hold", field, v, r.remaining())
		return 0, parseError(ErrCount, offset, str)
	}
	return int(v), nil
}

//script读取一个长度前缀的脚本并返回一个独立副本。
func (r *reader) script(field string) ([]byte, error) {
	n, err := r.count(field+" length", 1)
	if err != nil {
		return nil, err
	}
	b, err := r.next(n, field)
	if err != nil {
		return nil, err
	}
	script := make([]byte, n)
	copy(script, b)
	return script, nil
}

//DeserializeHex解码十六进制编码的事务。参见Deserialize。
func DeserializeHex(txHex string) (*Transaction, error) {
	raw, err := hashutil.DecodeHex(txHex)
	if err != nil {
		return nil, Error{
			Code:   ErrHex,
			Desc:   "transaction is not valid hex",
			Offset: -1,
			Err:    err,
		}
	}
	return Deserialize(raw)
}

//Deserialize从完整的签名字节流解码事务。大小设置为原始字节长度，
//ID设置为字节的双sha256。任何格式错误的输入都会返回Error并且不返回事务。
//
//不支持见证序列化。
func Deserialize(raw []byte) (*Transaction, error) {
	if len(raw) < minTxPayload {
		str := fmt.Sprintf("transaction of %d bytes is shorter than "+
			"the minimum %d", len(raw), minTxPayload)
		return nil, parseError(ErrTruncated, 0, str)
	}

	r := &reader{buf: raw}
	tx := &Transaction{}

	version, err := r.uint32("version")
	if err != nil {
		return nil, err
	}
	tx.Version = int32(version)

	numIns, err := r.count("input count", minTxInPayload)
	if err != nil {
		return nil, err
	}
	if numIns == 0 && r.remaining() > 0 && r.buf[r.off] == witnessFlag {
		return nil, parseError(ErrWitness, r.off-1,
			"witness serialized transactions are not supported")
	}

	tx.Inputs = make([]*Input, 0, numIns)
	for i := 0; i < numIns; i++ {
		in := &Input{}
		prevHash, err := r.next(chainhash.HashSize, "previous txid")
		if err != nil {
			return nil, err
		}
		copy(in.PrevTxID[:], prevHash)
		if in.PrevIndex, err = r.uint32("previous index"); err != nil {
			return nil, err
		}
		if in.Script, err = r.script("input script"); err != nil {
			return nil, err
		}
		if in.Sequence, err = r.uint32("sequence"); err != nil {
			return nil, err
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	numOuts, err := r.count("output count", minTxOutPayload)
	if err != nil {
		return nil, err
	}
	tx.Outputs = make([]*Output, 0, numOuts)
	for i := 0; i < numOuts; i++ {
		out := &Output{}
		value, err := r.uint64("output value")
		if err != nil {
			return nil, err
		}
		out.Value = int64(value)
		if out.Script, err = r.script("output script"); err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	if tx.LockTime, err = r.uint32("locktime"); err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		str := fmt.Sprintf("%d unexpected bytes after locktime",
			r.remaining())
		return nil, parseError(ErrTrailingData, r.off, str)
	}

	hash := chainhash.DoubleHashH(raw)
	tx.hash = &hash
	tx.size = len(raw)
	return tx, nil
}

//SerializeSize返回序列化事务所需的字节数。
func (tx *Transaction) SerializeSize(unsigned bool) int {
//4字节版本+4字节锁定时间
	n := 8 + VarIntSerializeSize(uint64(len(tx.Inputs))) +
		VarIntSerializeSize(uint64(len(tx.Outputs)))
	for _, in := range tx.Inputs {
		n += in.SerializeSize(unsigned)
	}
	for _, out := range tx.Outputs {
		n += out.SerializeSize()
	}
	return n
}

//Serialize按线路格式对事务进行编码。当unsigned为true时，每个输入的
//脚本字段被单个零长度占位字节替换。
//
//未签名的形式仅用于交给外部签名者预览；它不是有效的签名哈希原像。
func Serialize(tx *Transaction, unsigned bool) []byte {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize(unsigned))

	var scratch [8]byte
	binary.LittleEndian.PutUint32(scratch[:4], uint32(tx.Version))
	buf.Write(scratch[:4])

	buf.Write(VarInt(uint64(len(tx.Inputs))))
	for _, in := range tx.Inputs {
		buf.Write(in.PrevTxID[:])
		binary.LittleEndian.PutUint32(scratch[:4], in.PrevIndex)
		buf.Write(scratch[:4])
		if unsigned {
			buf.WriteByte(0x00)
		} else {
			buf.Write(VarInt(uint64(len(in.Script))))
			buf.Write(in.Script)
		}
		binary.LittleEndian.PutUint32(scratch[:4], in.Sequence)
		buf.Write(scratch[:4])
	}

	buf.Write(VarInt(uint64(len(tx.Outputs))))
	for _, out := range tx.Outputs {
		binary.LittleEndian.PutUint64(scratch[:], uint64(out.Value))
		buf.Write(scratch[:])
		buf.Write(VarInt(uint64(len(out.Script))))
		buf.Write(out.Script)
	}

	binary.LittleEndian.PutUint32(scratch[:4], tx.LockTime)
	buf.Write(scratch[:4])

	return buf.Bytes()
}

//SerializeHex返回十六进制编码的Serialize（tx，unsigned）。
func SerializeHex(tx *Transaction, unsigned bool) string {
	return hashutil.EncodeHex(Serialize(tx, unsigned))
}

//MsgTx将事务的签名序列化转换为btcd wire.MsgTx，用于中继。
func (tx *Transaction) MsgTx() (*wire.MsgTx, error) {
	msgTx := wire.NewMsgTx(tx.Version)
	err := msgTx.Deserialize(bytes.NewReader(Serialize(tx, false)))
	if err != nil {
		return nil, err
	}
	return msgTx, nil
}
