package graph

const walletQuery = `MATCH (wallet {addressId: $address})
RETURN wallet.addressId AS addressId,
       wallet.type AS type,
       wallet.btc AS btc,
       wallet.eth AS eth`

const transactionsQuery = `MATCH (a:Address {addressId: $address})-[r:TRANSACTION]-(b:Address)
RETURN r.hash AS hash,
       r.value AS value,
       r.input AS input,
       r.transaction_index AS transaction_index,
       r.gas AS gas,
       r.gas_used AS gas_used,
       r.gas_price AS gas_price,
       r.transaction_fee AS transaction_fee,
       r.block_number AS block_number,
       r.block_hash AS block_hash,
       r.block_timestamp AS block_timestamp,
       startNode(r).addressId AS from_address,
       endNode(r).addressId AS to_address`
