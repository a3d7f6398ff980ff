
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

import "github.com/btcsuite/feebump/rawtx"

//交易组件的最坏情况大小估计。
const (
//redemp2pkhsigscriptsize是赎回压缩p2pkh输出的输入脚本的
//最坏情况序列化大小：
//
//- OpDATA
//-72字节的der签名+1字节的叹息
//- OpthDATA33
//-33字节序列化压缩pubkey
	RedeemP2PKHSigScriptSize = 1 + 73 + 1 + 33

//redemp2pkhinputsize是赎回压缩p2pkh输出的交易输入的
//最坏情况大小：
//
//-32字节以前的Tx
//-4字节输出索引
//-1字节压缩int编码值107
//-107字节签名脚本
//-4字节序列
	RedeemP2PKHInputSize = 32 + 4 + 1 + RedeemP2PKHSigScriptSize + 4

//ChildSizeEstimate代替尚未序列化的子交易的大小，
//用于推荐CPFP费用。
	ChildSizeEstimate = 300
)

//EstimateSignedSize返回交易在每个输入都以压缩p2pkh签名脚本签名后的
//最坏情况序列化大小。对于带有空占位脚本的CPFP子交易，
//这是签名后的大小上限。
func EstimateSignedSize(tx *rawtx.Transaction) int {
//8个附加字节用于版本和锁定时间
	size := 8 + rawtx.VarIntSerializeSize(uint64(len(tx.Inputs))) +
		rawtx.VarIntSerializeSize(uint64(len(tx.Outputs))) +
		len(tx.Inputs)*RedeemP2PKHInputSize
	for _, out := range tx.Outputs {
		size += out.SerializeSize()
	}
	return size
}
