
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
	"math"

	"github.com/btcsuite/feebump/rawtx"
)

//ApplyFeeDelta将delta聪从所选输出转移到交易费用：输出值变为
//value-delta，费用变为fee+delta。负的delta将费用退回输出。
//
//如果新的输出值为零或以下（或在策略下为粉尘），则返回
//ErrInsufficientOutputValue；如果费用会变为负数，则返回ErrInput。
//出错时交易保持不变。交易中所有输出值加费用之和保持不变。
func (p Policy) ApplyFeeDelta(tx *rawtx.Transaction, outputIndex int, delta int64) error {
	if err := checkOutputIndex(tx, outputIndex); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}
	if delta == math.MinInt64 {
		return boostError(ErrInput, "fee delta out of range", nil)
	}

	out := tx.Outputs[outputIndex]
	newFee := tx.Fee + delta
	if (delta > 0 && newFee < tx.Fee) || newFee < 0 {
		str := fmt.Sprintf("fee %d adjusted by %d is out of range",
			tx.Fee, delta)
		return boostError(ErrInput, str, nil)
	}
	newValue := out.Value - delta
	switch {
	case delta > 0 && newValue > out.Value:
		newValue = math.MinInt64
	case delta < 0 && newValue < out.Value:
		newValue = math.MaxInt64
	}
	if err := p.checkOutputValue(newValue, len(out.Script)); err != nil {
		return err
	}
	if err := out.AdjustValue(-delta); err != nil {
		return boostError(ErrInsufficientOutputValue,
			"cannot adjust output value", err)
	}
	tx.Fee = newFee

	log.Debugf("Moved %d satoshis from output %d to fee of %v (output "+
		"%d, fee %d)", delta, outputIndex, txLabel(tx), out.Value, tx.Fee)
	return nil
}

//SetFee调整所选输出，使交易费用等于fee。
func (p Policy) SetFee(tx *rawtx.Transaction, outputIndex int, fee int64) error {
	if tx == nil {
		return boostError(ErrInput, "no transaction", nil)
	}
	if fee < 0 {
		str := fmt.Sprintf("negative fee %d", fee)
		return boostError(ErrInput, str, nil)
	}
	delta := fee - tx.Fee
	if tx.Fee < 0 && delta < fee {
		return boostError(ErrInput, "fee delta out of range", nil)
	}
	return p.ApplyFeeDelta(tx, outputIndex, delta)
}

func checkOutputIndex(tx *rawtx.Transaction, outputIndex int) error {
	if tx == nil {
		return boostError(ErrInput, "no transaction", nil)
	}
	if outputIndex < 0 || outputIndex >= len(tx.Outputs) {
		str := fmt.Sprintf("output index %d out of range [0, %d)",
			outputIndex, len(tx.Outputs))
		return boostError(ErrInput, str, nil)
	}
	return nil
}

func txLabel(tx *rawtx.Transaction) string {
	if id := tx.TxID(); id != "" {
		return id
	}
	return "unhashed transaction"
}
