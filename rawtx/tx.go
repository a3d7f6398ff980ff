
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

//包rawtx实现比特币事务的字节精确解码和编码，以及
//费用提升工作流所编辑的内存中事务模型。
//
//解码是全有或全无的：格式错误或截断的输入从不产生部分填充的事务。
package rawtx

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
//TxVersion是新构造事务的版本。
	TxVersion = 1

//MaxTxInSequenceNum是输入序列字段可以具有的最大值。
	MaxTxInSequenceNum uint32 = 0xffffffff

//MaxRBFSequence是仍然表示可替换性的最大序列号（BIP125）。
	MaxRBFSequence uint32 = 0xfffffffd
)

//输入引用以前事务的一个输出。
type Input struct {
//PrevTxID以线路顺序保存。String（）按惯例以相反顺序显示。
	PrevTxID  chainhash.Hash
	PrevIndex uint32
	Script    []byte
	Sequence  uint32
}

//NewInput返回一个花费prevTxID:prevIndex的输入，具有空脚本和最终序列号。
func NewInput(prevTxID *chainhash.Hash, prevIndex uint32) *Input {
	return &Input{
		PrevTxID:  *prevTxID,
		PrevIndex: prevIndex,
		Script:    []byte{},
		Sequence:  MaxTxInSequenceNum,
	}
}

//SerializeSize返回序列化输入所需的字节数。
func (in *Input) SerializeSize(unsigned bool) int {
	if unsigned {
//32字节哈希+4字节索引+1字节空脚本+4字节序列
		return 32 + 4 + 1 + 4
	}
	return 32 + 4 + VarIntSerializeSize(uint64(len(in.Script))) +
		len(in.Script) + 4
}

//输出是以聪为单位的值和锁定它的脚本。
type Output struct {
	Value  int64
	Script []byte
}

//NewOutput返回具有给定值和脚本的输出。
func NewOutput(value int64, script []byte) *Output {
	return &Output{Value: value, Script: script}
}

//AdjustValue将输出值改变delta。结果为零或负数时
//返回ErrValue错误并且值保持不变。
func (out *Output) AdjustValue(delta int64) error {
	newValue := out.Value + delta
	overflow := (delta > 0 && newValue < out.Value) ||
		(delta < 0 && newValue > out.Value)
	if overflow || newValue <= 0 {
		str := fmt.Sprintf("adjusting output value %d by %d leaves "+
			"a non-positive value", out.Value, delta)
		return Error{Code: ErrValue, Desc: str, Offset: -1}
	}
	out.Value = newValue
	return nil
}

//SerializeSize返回序列化输出所需的字节数。
func (out *Output) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(out.Script))) + len(out.Script)
}

//事务是一个比特币事务及其由调用方提供的费用。
//
//输入和输出序列由事务独占。当前只有一个
//工作流可以编辑事务；不执行锁定。
type Transaction struct {
	Version  int32
	Inputs   []*Input
	Outputs  []*Output
	LockTime uint32

//Fee是事务支付的费用（聪）。它不能从
//事务字节中恢复，因此由外部提供或在重新平衡时重新计算。
	Fee int64

//hash和size仅为从完整签名字节流解码的事务设置。
	hash *chainhash.Hash
	size int
}

//NewTransaction返回一个没有输入或输出的版本1事务。
func NewTransaction() *Transaction {
	return &Transaction{Version: TxVersion}
}

//AddInput将输入附加到事务。
func (tx *Transaction) AddInput(in *Input) {
	tx.Inputs = append(tx.Inputs, in)
}

//AddOutput将输出附加到事务。
func (tx *Transaction) AddOutput(out *Output) {
	tx.Outputs = append(tx.Outputs, out)
}

//Hash返回解码字节的双sha256。对于新构造的事务，
//在它们自己被序列化和签名之前，没有ID，返回nil。
func (tx *Transaction) Hash() *chainhash.Hash {
	return tx.hash
}

//TxID以惯用的反向十六进制形式返回事务ID。未定义时为空。
func (tx *Transaction) TxID() string {
	if tx.hash == nil {
		return ""
	}
	return tx.hash.String()
}

//Size返回解码字节流的长度。对于构造的事务，返回当前的签名序列化大小。
func (tx *Transaction) Size() int {
	if tx.hash != nil {
		return tx.size
	}
	return tx.SerializeSize(false)
}

//TotalOutputAmount返回所有输出值的总和。
func (tx *Transaction) TotalOutputAmount() int64 {
	var total int64
	for _, out := range tx.Outputs {
		total += out.Value
	}
	return total
}

//TotalInputAmount返回输出总额加上费用，即花费的输入总值。
//在费用重新平衡下此值不变。
func (tx *Transaction) TotalInputAmount() int64 {
	return tx.TotalOutputAmount() + tx.Fee
}

//SignalsReplacement报告是否有任何输入选择加入BIP125替换。
func (tx *Transaction) SignalsReplacement() bool {
	for _, in := range tx.Inputs {
		if in.Sequence <= MaxRBFSequence {
			return true
		}
	}
	return false
}

//Copy创建事务的深层副本。副本保留解码的ID和大小。
func (tx *Transaction) Copy() *Transaction {
	c := &Transaction{
		Version:  tx.Version,
		Inputs:   make([]*Input, 0, len(tx.Inputs)),
		Outputs:  make([]*Output, 0, len(tx.Outputs)),
		LockTime: tx.LockTime,
		Fee:      tx.Fee,
		size:     tx.size,
	}
	if tx.hash != nil {
		h := *tx.hash
		c.hash = &h
	}
	for _, in := range tx.Inputs {
		script := make([]byte, len(in.Script))
		copy(script, in.Script)
		c.Inputs = append(c.Inputs, &Input{
			PrevTxID:  in.PrevTxID,
			PrevIndex: in.PrevIndex,
			Script:    script,
			Sequence:  in.Sequence,
		})
	}
	for _, out := range tx.Outputs {
		script := make([]byte, len(out.Script))
		copy(script, out.Script)
		c.Outputs = append(c.Outputs, &Output{
			Value:  out.Value,
			Script: script,
		})
	}
	return c
}
