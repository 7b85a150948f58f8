package floor1

// inverseDBTable is the standard Vorbis floor 1 dequantization table: 256
// entries mapping a [0,255] curve value to a linear magnitude multiplier.
var inverseDBTable = [256]float32{
	1.0649863e-07, 1.1341951e-07, 1.2079015e-07, 1.2863978e-07,
	1.3699951e-07, 1.4590251e-07, 1.5538408e-07, 1.6548181e-07,
	1.7623575e-07, 1.8768855e-07, 1.9988561e-07, 2.1287530e-07,
	2.2670913e-07, 2.4144197e-07, 2.5713223e-07, 2.7384213e-07,
	2.9163793e-07, 3.1059021e-07, 3.3077411e-07, 3.5226968e-07,
	3.7516214e-07, 3.9954229e-07, 4.2550680e-07, 4.5315863e-07,
	4.8260743e-07, 5.1396998e-07, 5.4737065e-07, 5.8294187e-07,
	6.2082472e-07, 6.6116941e-07, 7.0413592e-07, 7.4989464e-07,
	7.9862701e-07, 8.5052630e-07, 9.0579828e-07, 9.6466216e-07,
	1.0273513e-06, 1.0941144e-06, 1.1652161e-06, 1.2409384e-06,
	1.3215816e-06, 1.4074654e-06, 1.4989305e-06, 1.5963394e-06,
	1.7000785e-06, 1.8105592e-06, 1.9282195e-06, 2.0535261e-06,
	2.1869758e-06, 2.3290978e-06, 2.4804557e-06, 2.6416497e-06,
	2.8133190e-06, 2.9961443e-06, 3.1908506e-06, 3.3982101e-06,
	3.6190449e-06, 3.8542308e-06, 4.1047004e-06, 4.3714470e-06,
	4.6555282e-06, 4.9580707e-06, 5.2802740e-06, 5.6234160e-06,
	5.9888572e-06, 6.3780469e-06, 6.7925283e-06, 7.2339451e-06,
	7.7040476e-06, 8.2047000e-06, 8.7378876e-06, 9.3057248e-06,
	9.9104632e-06, 1.0554893e-05, 1.1240785e-05, 1.1970856e-05,
	1.2747995e-05, 1.3575215e-05, 1.4455825e-05, 1.5393210e-05,
	1.6390794e-05, 1.7452221e-05, 1.8582081e-05, 1.9784875e-05,
	2.1065121e-05, 2.2438651e-05, 2.3900462e-05, 2.5459284e-05,
	2.7120802e-05, 2.8892393e-05, 3.0780038e-05, 3.2791551e-05,
	3.4931473e-05, 3.7211524e-05, 3.9640258e-05, 4.2226755e-05,
	4.4979977e-05, 4.7910414e-05, 5.1029066e-05, 5.4347615e-05,
	5.7878472e-05, 6.1636006e-05, 6.5633815e-05, 6.9887953e-05,
	7.4415075e-05, 7.9233246e-05, 8.4362548e-05, 8.9824368e-05,
	9.5641551e-05, 1.0183851e-04, 1.0843836e-04, 1.1547824e-04,
	1.2298541e-04, 1.3099102e-04, 1.3952993e-04, 1.4863042e-04,
	1.5833044e-04, 1.6867256e-04, 1.7970186e-04, 1.9146770e-04,
	2.0401966e-04, 2.1741248e-04, 2.3170135e-04, 2.4694261e-04,
	2.6319529e-04, 2.8052860e-04, 2.9901512e-04, 3.1873065e-04,
	3.3975710e-04, 3.6217657e-04, 3.8607699e-04, 4.1155311e-04,
	4.3870557e-04, 4.6764373e-04, 4.9848481e-04, 5.3134794e-04,
	5.6636220e-04, 6.0366832e-04, 6.4341895e-04, 6.8577896e-04,
	7.3091565e-04, 7.7899992e-04, 8.3021661e-04, 8.8475598e-04,
	9.4281663e-04, 1.0046046e-03, 1.0703403e-03, 1.1402594e-03,
	1.2146029e-03, 1.2936278e-03, 1.3776001e-03, 1.4667994e-03,
	1.5615169e-03, 1.6620584e-03, 1.7687446e-03, 1.8819115e-03,
	2.0019139e-03, 2.1291217e-03, 2.2639216e-03, 2.4067167e-03,
	2.5579292e-03, 2.7180000e-03, 2.8873993e-03, 3.0666193e-03,
	3.2561858e-03, 3.4566475e-03, 3.6686764e-03, 3.8928727e-03,
	4.1298639e-03, 4.3804070e-03, 4.6451841e-03, 4.9249063e-03,
	5.2204092e-03, 5.5325587e-03, 5.8622516e-03, 6.2105181e-03,
	6.5784201e-03, 6.9670534e-03, 7.3776469e-03, 7.8114686e-03,
	8.2698264e-03, 8.7541699e-03, 9.2659927e-03, 9.8068362e-03,
	1.0378287e-02, 1.0981971e-02, 1.1619572e-02, 1.2292854e-02,
	1.3003649e-02, 1.3753870e-02, 1.4545506e-02, 1.5380640e-02,
	1.6261442e-02, 1.7190187e-02, 1.8169249e-02, 1.9201110e-02,
	2.0288369e-02, 2.1433749e-02, 2.2640103e-02, 2.3910415e-02,
	2.5247806e-02, 2.6655537e-02, 2.8137018e-02, 2.9695821e-02,
	3.1335687e-02, 3.3060543e-02, 3.4874508e-02, 3.6781906e-02,
	3.8787276e-02, 4.0895396e-02, 4.3111301e-02, 4.5440291e-02,
	4.7887971e-02, 5.0460245e-02, 5.3163348e-02, 5.6003864e-02,
	5.8988771e-02, 6.2125507e-02, 6.5421944e-02, 6.8886423e-02,
	7.2527770e-02, 7.6355319e-02, 8.0378962e-02, 8.4609174e-02,
	8.9056998e-02, 9.3734062e-02, 9.8652600e-02, 1.0382551e-01,
	1.0926694e-01, 1.1499200e-01, 1.2101690e-01, 1.2735910e-01,
	1.3403727e-01, 1.4107137e-01, 1.4848274e-01, 1.5629408e-01,
	1.6452961e-01, 1.7321501e-01, 1.8237756e-01, 1.9204608e-01,
	2.0225107e-01, 2.1302475e-01, 2.2440122e-01, 2.3641651e-01,
	2.4910873e-01, 2.6251825e-01, 2.7668771e-01, 2.9166222e-01,
	3.0748938e-01, 3.2421968e-01, 3.4191650e-01, 3.6063648e-01,
	3.8044968e-01, 4.0142998e-01, 4.2365488e-01, 4.4720602e-01,
	4.7216922e-01, 4.9863472e-01, 5.2670747e-01, 5.5648718e-01,
	5.8808860e-01, 6.2163202e-01, 6.5724391e-01, 6.9505790e-01,
	7.3521450e-01, 7.7786143e-01, 8.2315405e-01, 8.7125550e-01,
	9.2233699e-01, 9.7657800e-01, 1.0341571e+00, 1.0952694e+00,
}
