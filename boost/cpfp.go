
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

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/feebump/address"
	"github.com/btcsuite/feebump/rawtx"
)

//NewChild构造一个CPFP子交易，它花费父交易的输出outputIndex，
//并将其值减去fee支付到destination。
//
//子交易只有一个输入（父交易ID、索引、空占位脚本、最终序列号）
//和一个输出。目标地址首先被解码；无效地址在构造任何内容之前
//返回ErrInvalidAddress。父交易必须有ID，也就是说它必须是从
//签名的字节流解码而来的。返回的子交易的Fee为fee且没有ID。
func (p Policy) NewChild(parent *rawtx.Transaction, outputIndex uint32,
	fee int64, destination string, params *chaincfg.Params) (*rawtx.Transaction, error) {

	script, err := address.PayToAddrScript(destination, params)
	if err != nil {
		str := fmt.Sprintf("invalid destination address %q", destination)
		return nil, boostError(ErrInvalidAddress, str, err)
	}

	if parent == nil {
		return nil, boostError(ErrInput, "no parent transaction", nil)
	}
	parentHash := parent.Hash()
	if parentHash == nil {
		return nil, boostError(ErrInput, "parent transaction has no id; "+
			"it must be decoded from signed bytes", nil)
	}
	if uint64(outputIndex) >= uint64(len(parent.Outputs)) {
		str := fmt.Sprintf("output index %d out of range [0, %d)",
			outputIndex, len(parent.Outputs))
		return nil, boostError(ErrInput, str, nil)
	}
	if fee < 0 {
		str := fmt.Sprintf("negative fee %d", fee)
		return nil, boostError(ErrInput, str, nil)
	}

	value := parent.Outputs[outputIndex].Value - fee
	if value > parent.Outputs[outputIndex].Value {
		return nil, boostError(ErrInsufficientOutputValue,
			"child fee exceeds the parent output value", nil)
	}
	if err := p.checkOutputValue(value, len(script)); err != nil {
		return nil, err
	}

	child := rawtx.NewTransaction()
	child.AddInput(rawtx.NewInput(parentHash, outputIndex))
	child.AddOutput(rawtx.NewOutput(value, script))
	child.Fee = fee

	log.Debugf("Built child spending %v:%d paying %d to %s with fee %d",
		parentHash, outputIndex, value, destination, fee)
	return child, nil
}
